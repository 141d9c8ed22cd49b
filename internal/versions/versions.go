// Package versions parses and renders the project's release version strings.
package versions

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidFormat is the sentinel you can check with errors.Is.
var ErrInvalidFormat = errors.New("invalid version format")

// versionRegex is the release grammar: MAJOR.MINOR.PATCH with an optional
// prerelease of alphanumerics and dots. Stricter than general semver on
// purpose: no leading "v", no build metadata, no hyphens in the prerelease.
var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([A-Za-z0-9.]+))?$`)

// Version is an immutable parsed release version. Its String form is exactly
// the text it was parsed from, so parse-then-render round-trips.
type Version struct {
	raw        string
	major      uint64
	minor      uint64
	patch      uint64
	prerelease string
}

// Parse validates s against the release grammar and returns the parsed
// Version. Any other shape fails with ErrInvalidFormat.
func Parse(s string) (Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: major: %v", ErrInvalidFormat, s, err)
	}
	minor, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: minor: %v", ErrInvalidFormat, s, err)
	}
	patch, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: patch: %v", ErrInvalidFormat, s, err)
	}

	return Version{
		raw:        s,
		major:      major,
		minor:      minor,
		patch:      patch,
		prerelease: m[4],
	}, nil
}

// IsValid reports whether s matches the release grammar.
func IsValid(s string) bool {
	return versionRegex.MatchString(s)
}

// String returns the canonical textual form, identical to the parsed input.
func (v Version) String() string {
	return v.raw
}

func (v Version) Major() uint64 {
	return v.major
}

func (v Version) Minor() uint64 {
	return v.minor
}

func (v Version) Patch() uint64 {
	return v.patch
}

// Prerelease returns the prerelease identifier, or "" when absent.
func (v Version) Prerelease() string {
	return v.prerelease
}

// Equal compares two versions textually. The raw form is canonical, so this
// is the only comparison the rest of the tool relies on.
func (v Version) Equal(o Version) bool {
	return v.raw == o.raw
}

// TagName returns the annotated-tag name for this version, e.g. "v1.2.0".
func (v Version) TagName() string {
	return "v" + v.raw
}

// Compare orders a against b by semver precedence: 1 if a > b, -1 if a < b,
// 0 if equal. Only the monotonicity policy consults ordering; the release
// grammar admits a few strings (e.g. prereleases with empty dot segments)
// that semver precedence does not define, and those return an error.
func Compare(a, b Version) (int, error) {
	av, err := semver.StrictNewVersion(a.raw)
	if err != nil {
		return 0, fmt.Errorf("versions: compare %q: %w", a.raw, err)
	}
	bv, err := semver.StrictNewVersion(b.raw)
	if err != nil {
		return 0, fmt.Errorf("versions: compare %q: %w", b.raw, err)
	}
	return av.Compare(bv), nil
}
