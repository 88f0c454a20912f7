package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aquasecurity/node-lifecycle/classify"
	"github.com/aquasecurity/node-lifecycle/lifecycle"
	"github.com/aquasecurity/node-lifecycle/schedule"
)

const DefaultWarnDays = 180

type Level int

const (
	LevelOK Level = iota
	LevelWarning
	LevelError
)

const (
	ExitOK      = 0
	ExitWarning = 1
	ExitEOL     = 2
)

type Options struct {
	// WarnDays is the number of days before end-of-life that triggers a warning.
	WarnDays int
	// NoFail turns the end-of-life failure into a successful exit.
	NoFail bool
}

// Verdict is the outcome of a check, ready to be printed.
type Verdict struct {
	Level    Level
	ExitCode int
	Lines    []string
}

// FriendlyDate renders a YYYY-MM-DD date as "June 1, 2025" using the UTC calendar.
// Input in any other shape is returned unchanged.
func FriendlyDate(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	var ymd [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n == 0 {
			return date
		}
		ymd[i] = n
	}
	return time.Date(ymd[0], time.Month(ymd[1]), ymd[2], 0, 0, 0, 0, time.UTC).Format("January 2, 2006")
}

func label(kind string, s schedule.Schedule, major int) string {
	if name := lifecycle.Codename(s, major); name != "" {
		return fmt.Sprintf("%s v%d (“%s”)", kind, major, name)
	}
	return fmt.Sprintf("%s v%d", kind, major)
}

// Recommendations lists the release lines worth upgrading to: the newest active LTS
// when it is newer than the classified line, and the Current line unless already on it.
func Recommendations(c classify.Classification, s schedule.Schedule, now time.Time) []string {
	var rec []string
	if lts := lifecycle.ActiveLTSVersions(s, now); len(lts) > 0 && lts[0] > c.Major {
		rec = append(rec, label("LTS", s, lts[0]))
	}
	if current, ok := lifecycle.CurrentVersion(s, now); ok && current != c.Major {
		rec = append(rec, label("Current", s, current))
	}
	return rec
}

// Evaluate turns a classification into the messages and exit code of the CLI.
func Evaluate(runtime string, c classify.Classification, s schedule.Schedule, now time.Time, opts Options) Verdict {
	switch {
	case c.Status == classify.StatusEOL:
		v := Verdict{
			Level:    LevelError,
			ExitCode: ExitEOL,
			Lines: []string{
				fmt.Sprintf("❌ Node %s (major %d) is EOL as of %s (%s).", runtime, c.Major, c.EOL, FriendlyDate(c.EOL)),
			},
		}
		if opts.NoFail {
			v.ExitCode = ExitOK
		}
		if rec := Recommendations(c, s, now); len(rec) > 0 {
			v.Lines = append(v.Lines, fmt.Sprintf("Recommendation: Update to %s.", strings.Join(rec, " or ")))
		}
		return v
	case c.Status == classify.StatusUnknown || c.DaysToEOL == nil:
		return Verdict{
			Level:    LevelWarning,
			ExitCode: ExitWarning,
			Lines:    []string{fmt.Sprintf("⚠️  Node %s → unknown release line (no schedule data).", runtime)},
		}
	case *c.DaysToEOL <= opts.WarnDays:
		v := Verdict{
			Level:    LevelWarning,
			ExitCode: ExitWarning,
			Lines: []string{
				fmt.Sprintf("⚠️  Node %s (major %d) → %s. EOL %s (%s) in %d days.",
					runtime, c.Major, c.Status, c.EOL, FriendlyDate(c.EOL), *c.DaysToEOL),
			},
		}
		if rec := Recommendations(c, s, now); len(rec) > 0 {
			v.Lines = append(v.Lines, fmt.Sprintf("Consider upgrading to %s.", strings.Join(rec, " or ")))
		}
		return v
	}

	var suffix string
	if name := lifecycle.Codename(s, c.Major); name != "" {
		suffix = fmt.Sprintf(" (“%s”)", name)
	}
	return Verdict{
		Level:    LevelOK,
		ExitCode: ExitOK,
		Lines: []string{
			fmt.Sprintf("✅ Node %s (major %d)%s → %s. EOL %s (%s) in %d days.",
				runtime, c.Major, suffix, c.Status, c.EOL, FriendlyDate(c.EOL), *c.DaysToEOL),
		},
	}
}
