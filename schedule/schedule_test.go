package schedule_test

import (
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"

	"github.com/aquasecurity/node-lifecycle/schedule"
)

func TestMerge(t *testing.T) {
	a := schedule.Release{LTS: "2023-10-24", End: "2026-04-30"}
	b := schedule.Release{Start: "2023-04-18", Maintenance: "2024-10-22", End: "2026-05-01"}
	c := schedule.Release{End: "2027-04-30"}

	tests := []struct {
		name      string
		primary   schedule.Schedule
		secondary schedule.Schedule
		want      schedule.Schedule
	}{
		{
			name:      "primary record replaces the whole secondary record",
			primary:   schedule.Schedule{20: a},
			secondary: schedule.Schedule{20: b, 22: c},
			want:      schedule.Schedule{20: a, 22: c},
		},
		{
			name:      "primary only",
			primary:   schedule.Schedule{20: a},
			secondary: nil,
			want:      schedule.Schedule{20: a},
		},
		{
			name:      "secondary only",
			primary:   schedule.Schedule{},
			secondary: schedule.Schedule{22: c},
			want:      schedule.Schedule{22: c},
		},
		{
			name: "both empty",
			want: schedule.Schedule{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.Merge(tt.primary, tt.secondary)
			if diff := pretty.Compare(got, tt.want); diff != "" {
				t.Errorf("Merge() diff (-got +want):\n%s", diff)
			}
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	primary := schedule.Schedule{20: {End: "2026-04-30"}}
	secondary := schedule.Schedule{20: {End: "2026-05-01"}, 22: {End: "2027-04-30"}}

	merged := schedule.Merge(primary, secondary)
	merged[24] = schedule.Release{End: "2028-04-30"}

	assert.Len(t, primary, 1)
	assert.Len(t, secondary, 2)
	assert.Equal(t, "2026-05-01", secondary[20].End)
}

func TestSchedule_Majors(t *testing.T) {
	s := schedule.Schedule{24: {}, 18: {}, 22: {}, 20: {}}
	assert.Equal(t, []int{18, 20, 22, 24}, s.Majors())
	assert.Empty(t, schedule.Schedule{}.Majors())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "date only",
			input:  "2025-06-01",
			want:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "timestamp with offset",
			input:  "2025-06-01T23:30:00+02:00",
			want:   time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "empty", input: ""},
		{name: "garbage", input: "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.ParseDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	got := schedule.DateOnly(time.Date(2025, 6, 2, 3, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestRelease_SupportedAt(t *testing.T) {
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, schedule.Release{End: "2026-04-30"}.SupportedAt(now))
	assert.False(t, schedule.Release{End: "2025-06-01"}.SupportedAt(now))
	assert.False(t, schedule.Release{End: "2025-06-02"}.SupportedAt(now))
	assert.False(t, schedule.Release{}.SupportedAt(now))
	assert.False(t, schedule.Release{End: "soon"}.SupportedAt(now))
}
