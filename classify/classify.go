package classify

import (
	"time"

	"github.com/aquasecurity/node-lifecycle/schedule"
	"github.com/aquasecurity/node-lifecycle/version"
)

type Status string

const (
	StatusCurrent     Status = "current"
	StatusActiveLTS   Status = "active-lts"
	StatusMaintenance Status = "maintenance"
	StatusEOL         Status = "eol"
	StatusUnknown     Status = "unknown"
)

const day = 24 * time.Hour

// Classification is the support status of a single version.
type Classification struct {
	Major  int    `json:"major"`
	Status Status `json:"status"`
	// EOL is the end-of-life date as written in the schedule.
	EOL string `json:"eol,omitempty"`
	// DaysToEOL is zero or negative once the release line has reached end-of-life.
	DaysToEOL *int `json:"daysToEol,omitempty"`
}

// HasMajor reports whether a major version could be extracted from the input.
func (c Classification) HasMajor() bool {
	return c.Major != version.InvalidMajor
}

// Classify determines the support status of the given version as of now.
// Malformed input or missing schedule data yield StatusUnknown.
func Classify(v string, s schedule.Schedule, now time.Time) Classification {
	major, err := version.Major(v)
	if err != nil {
		return Classification{Major: version.InvalidMajor, Status: StatusUnknown}
	}

	rel, ok := s[major]
	if !ok {
		return Classification{Major: major, Status: StatusUnknown}
	}

	days, ok := DaysUntil(rel.End, now)
	if !ok {
		return Classification{Major: major, Status: StatusUnknown}
	}

	// EOL first, then maintenance, then LTS, whatever order the dates are in.
	var status Status
	if days <= 0 {
		status = StatusEOL
	} else if m, ok := rel.MaintenanceDate(); ok && !m.After(now) {
		status = StatusMaintenance
	} else if lts, ok := rel.LTSDate(); ok && !lts.After(now) {
		status = StatusActiveLTS
	} else {
		status = StatusCurrent
	}

	return Classification{
		Major:     major,
		Status:    status,
		EOL:       rel.End,
		DaysToEOL: &days,
	}
}

// DaysUntil returns the number of UTC calendar days from now to the given date.
// The time of day is ignored on both sides, so a date equal to today yields 0.
func DaysUntil(date string, now time.Time) (int, bool) {
	t, ok := schedule.ParseDate(date)
	if !ok {
		return 0, false
	}
	return int(schedule.DateOnly(t).Sub(schedule.DateOnly(now)) / day), true
}
