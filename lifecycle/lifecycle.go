package lifecycle

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/aquasecurity/node-lifecycle/schedule"
)

var codenames = map[int]string{
	18: "Hydrogen",
	20: "Iron",
	22: "Jod",
	24: "Krypton",
}

// hasPhaseData reports whether any release line carries an LTS start date.
// Without it, LTS and Current lines are inferred from version numbers.
func hasPhaseData(s schedule.Schedule) bool {
	return lo.SomeBy(lo.Values(s), func(r schedule.Release) bool {
		return r.LTS != ""
	})
}

func supported(s schedule.Schedule, now time.Time) []int {
	return lo.Filter(s.Majors(), func(major int, _ int) bool {
		return s[major].SupportedAt(now)
	})
}

func descending(majors []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(majors)))
	return majors
}

// ActiveLTSVersions returns the majors in their active or maintenance LTS phase,
// newest first.
//
// When the schedule has no LTS dates at all, every supported even major except the
// newest supported one is treated as LTS.
func ActiveLTSVersions(s schedule.Schedule, now time.Time) []int {
	if hasPhaseData(s) {
		return descending(lo.Filter(supported(s, now), func(major int, _ int) bool {
			lts, ok := s[major].LTSDate()
			return ok && !lts.After(now)
		}))
	}

	majors := supported(s, now)
	if len(majors) == 0 {
		return []int{}
	}
	current := lo.Max(majors)
	return descending(lo.Filter(majors, func(major int, _ int) bool {
		return major != current && major%2 == 0
	}))
}

// CurrentVersion returns the newest supported major that has not entered LTS yet.
// Without LTS dates in the schedule, it is the newest supported major.
func CurrentVersion(s schedule.Schedule, now time.Time) (int, bool) {
	majors := supported(s, now)
	if hasPhaseData(s) {
		majors = lo.Filter(majors, func(major int, _ int) bool {
			lts, ok := s[major].LTSDate()
			return !ok || lts.After(now)
		})
	}
	if len(majors) == 0 {
		return 0, false
	}
	return lo.Max(majors), true
}

// Codename returns the release codename, preferring the one from the schedule.
func Codename(s schedule.Schedule, major int) string {
	if r, ok := s[major]; ok && r.Codename != "" {
		return r.Codename
	}
	return codenames[major]
}
