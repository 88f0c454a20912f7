package version

import (
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"golang.org/x/xerrors"
)

// InvalidMajor is returned alongside ErrUnparsable and used by callers
// as the "not a number" major version.
const InvalidMajor = -1

var (
	ErrUnparsable = xerrors.New("no numeric version found")

	// The first run of up to three dot-separated numbers, not glued to other digits.
	// Prefixes such as "v" or "node-v" are skipped.
	coerceRegexp = regexp.MustCompile(`(?:^|[^\d])(\d{1,16})(?:\.(\d{1,16}))?(?:\.(\d{1,16}))?(?:$|[^\d])`)
)

// Coerce extracts a "major.minor.patch" string from an arbitrary version-like
// input. Missing minor and patch components default to 0.
func Coerce(s string) (string, error) {
	m := coerceRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", xerrors.Errorf("%q: %w", s, ErrUnparsable)
	}
	parts := []string{m[1], "0", "0"}
	for i, p := range m[2:] {
		if p != "" {
			parts[i+1] = p
		}
	}
	return strings.Join(parts, "."), nil
}

// Major returns the release line of the given version string, e.g. 22 for "v22.5.0".
func Major(s string) (int, error) {
	core, err := Coerce(s)
	if err != nil {
		return InvalidMajor, err
	}
	v, err := goversion.NewVersion(core)
	if err != nil {
		return InvalidMajor, xerrors.Errorf("%q: %w", s, ErrUnparsable)
	}
	return v.Segments()[0], nil
}
