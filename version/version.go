/*
Package version provides parsing, comparison and constraint matching for
flexible semantic-version-like strings.

Unlike a strict semver parser it tolerates any number of numeric segments
('1.4', '1.2.3.4') and segment values up to the 64-bit signed maximum, while
still honoring semver prerelease precedence and build metadata syntax.

Usage:

	v, _ := version.NewVersion("1.4.0-beta.2")
	cs, _ := version.NewConstraints(">= 1.2, < 2.0")
	cs.Check(v) // true
*/
package version

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// versionConfig is used to store the version parser configuration.
type versionConfig struct {
	versionRgx         string         // Version grammar (e.g. v1.2.3-rc.1+build5)
	versionRgxCompiled *regexp.Regexp // Compiled version grammar
	numericRgxCompiled *regexp.Regexp // Purely numeric identifier (used for prerelease precedence)
}

// versionCfg is the global version parser configuration.
var versionCfg versionConfig

// Version parser config initialization and expressions compiling.
func init() {
	ident := `[0-9A-Za-z-]+`
	versionCfg.versionRgx = fmt.Sprintf(`^v?([0-9]+(?:\.[0-9]+)*)(?:-(%[1]s(?:\.%[1]s)*))?(?:\+(%[1]s(?:\.%[1]s)*))?$`, ident)
	versionCfg.versionRgxCompiled = regexp.MustCompile(versionCfg.versionRgx)
	versionCfg.numericRgxCompiled = regexp.MustCompile(`^[0-9]+$`)
}

// Version represents a single parsed version. It is immutable once
// constructed; all methods either read it or return a new Version.
type Version struct {
	segments []int64
	pre      string
	meta     string
	original string
}

// NewVersion parses a version string using the flexible grammar: an optional
// leading 'v', one or more dot-separated numeric segments, an optional
// '-prerelease' and an optional '+metadata' suffix.
func NewVersion(value string) (*Version, error) {
	return parseVersion(value, false)
}

// NewStrictVersion parses a version string requiring exactly three numeric
// segments and no leading zeros in segments or numeric prerelease identifiers.
func NewStrictVersion(value string) (*Version, error) {
	return parseVersion(value, true)
}

func parseVersion(value string, strict bool) (*Version, error) {
	if value == "" {
		return nil, fmt.Errorf("unable to parse version: %w", ErrEmptyVersion)
	}

	// Fast path: digits and dots only means no prefix, prerelease or
	// metadata can be present, so the segments can be split off directly.
	if !strict && plainSegments(value) {
		segments, err := parseSegments(value, false)
		if err != nil {
			return nil, err
		}
		return &Version{segments: segments, original: value}, nil
	}

	matches := versionCfg.versionRgxCompiled.FindStringSubmatch(value)
	if matches == nil {
		return nil, fmt.Errorf("version %q is not supported: %w", value, ErrMalformedVersion)
	}
	core, pre, meta := matches[1], matches[2], matches[3]

	segments, err := parseSegments(core, strict)
	if err != nil {
		return nil, err
	}

	if strict {
		if len(segments) != 3 {
			return nil, fmt.Errorf("version %q has %d segment(s): %w", value, len(segments), ErrSegmentCount)
		}
		for _, id := range strings.Split(pre, ".") {
			if len(id) > 1 && id[0] == '0' && versionCfg.numericRgxCompiled.MatchString(id) {
				return nil, fmt.Errorf("prerelease identifier %q: %w", id, ErrLeadingZero)
			}
		}
	}

	return &Version{segments: segments, pre: pre, meta: meta, original: value}, nil
}

// plainSegments reports whether the input consists solely of digits and
// dots with no empty run, i.e. matches [0-9]+(\.[0-9]+)*.
func plainSegments(s string) bool {
	expectDigit := true
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			expectDigit = false
		case c == '.' && !expectDigit:
			expectDigit = true
		default:
			return false
		}
	}
	return !expectDigit && s != ""
}

// parseSegments converts the dotted numeric core into int64 segments.
// Overflow beyond the signed 64-bit range is reported, never wrapped.
func parseSegments(core string, strict bool) ([]int64, error) {
	parts := strings.Split(core, ".")
	segments := make([]int64, len(parts))
	for i, part := range parts {
		if strict && len(part) > 1 && part[0] == '0' {
			return nil, fmt.Errorf("segment %q: %w", part, ErrLeadingZero)
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("segment %q: %w", part, ErrSegmentTooLarge)
			}
			return nil, fmt.Errorf("segment %q: %w", part, ErrMalformedVersion)
		}
		segments[i] = n
	}
	return segments, nil
}

// Segments returns a copy of the numeric segments, at the count they were parsed.
func (v *Version) Segments() []int64 {
	segments := make([]int64, len(v.segments))
	copy(segments, v.segments)
	return segments
}

// Prerelease returns the prerelease identifiers after '-', or "" when absent.
func (v *Version) Prerelease() string {
	return v.pre
}

// Metadata returns the build metadata after '+', or "" when absent.
// Metadata never participates in comparison.
func (v *Version) Metadata() string {
	return v.meta
}

// Original returns the exact input string the Version was parsed from.
func (v *Version) Original() string {
	return v.original
}

// Major returns the first segment.
func (v *Version) Major() int64 {
	return v.segment(0)
}

// Minor returns the second segment, or zero when absent.
func (v *Version) Minor() int64 {
	return v.segment(1)
}

// Patch returns the third segment, or zero when absent.
func (v *Version) Patch() int64 {
	return v.segment(2)
}

func (v *Version) segment(i int) int64 {
	if i >= len(v.segments) {
		return 0
	}
	return v.segments[i]
}

// IsStable reports whether the version carries no prerelease identifier.
func (v *Version) IsStable() bool {
	return v.pre == ""
}

// IsPrerelease reports whether the version carries a prerelease identifier.
func (v *Version) IsPrerelease() bool {
	return v.pre != ""
}

// Core returns the version reduced to exactly major.minor.patch: extra
// segments are dropped, missing ones are zero, prerelease and metadata
// are stripped.
func (v *Version) Core() *Version {
	segments := []int64{v.Major(), v.Minor(), v.Patch()}
	return newFromSegments(segments)
}

// IncrementMajor returns a new Version with the first segment bumped, every
// lower segment zeroed and prerelease/metadata cleared.
func (v *Version) IncrementMajor() (*Version, error) {
	return v.increment(0)
}

// IncrementMinor returns a new Version with the second segment bumped, every
// lower segment zeroed and prerelease/metadata cleared.
func (v *Version) IncrementMinor() (*Version, error) {
	return v.increment(1)
}

// IncrementPatch returns a new Version with the third segment bumped and
// prerelease/metadata cleared.
func (v *Version) IncrementPatch() (*Version, error) {
	return v.increment(2)
}

func (v *Version) increment(idx int) (*Version, error) {
	segments := v.Segments()
	for len(segments) <= idx {
		segments = append(segments, 0)
	}
	if segments[idx] == math.MaxInt64 {
		return nil, fmt.Errorf("segment %d of %q is at the maximum value: %w", idx, v, ErrIncrementOverflow)
	}
	segments[idx]++
	for i := idx + 1; i < len(segments); i++ {
		segments[i] = 0
	}
	return newFromSegments(segments), nil
}

// newFromSegments constructs a derived Version whose original string is its
// canonical form.
func newFromSegments(segments []int64) *Version {
	v := &Version{segments: segments}
	v.original = v.String()
	return v
}

// String returns the canonical form: dotted segments at their parsed count,
// followed by '-prerelease' and '+metadata' when present. A leading 'v' from
// the input is not reproduced.
func (v *Version) String() string {
	var sb strings.Builder
	for i, s := range v.segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatInt(s, 10))
	}
	if v.pre != "" {
		sb.WriteByte('-')
		sb.WriteString(v.pre)
	}
	if v.meta != "" {
		sb.WriteByte('+')
		sb.WriteString(v.meta)
	}
	return sb.String()
}
