package schedule

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Merge returns a new schedule holding every release line of both inputs.
// When a major exists in both, the primary record replaces the secondary one as a whole.
func Merge(primary, secondary Schedule) Schedule {
	return lo.Assign(secondary, primary)
}

// Majors returns the major versions of the schedule in ascending order.
func (s Schedule) Majors() []int {
	majors := maps.Keys(s)
	slices.Sort(majors)
	return majors
}

// ParseDate parses a schedule date in UTC. The second value is false when the date is
// empty or unparsable.
func ParseDate(s string) (time.Time, bool) {
	// Schedule dates always start with the year.
	if s == "" || s[0] < '0' || s[0] > '9' {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// DateOnly drops the time of day, keeping the UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndDate returns the parsed end-of-life date of the release.
func (r Release) EndDate() (time.Time, bool) {
	return ParseDate(r.End)
}

// LTSDate returns the parsed start of the LTS phase.
func (r Release) LTSDate() (time.Time, bool) {
	return ParseDate(r.LTS)
}

// MaintenanceDate returns the parsed start of the maintenance phase.
func (r Release) MaintenanceDate() (time.Time, bool) {
	return ParseDate(r.Maintenance)
}

// SupportedAt reports whether the release has a valid end date after now.
func (r Release) SupportedAt(now time.Time) bool {
	end, ok := r.EndDate()
	return ok && end.After(now)
}
