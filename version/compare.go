package version

import "strings"

/*
Version comparison. Core segments are compared pairwise with the shorter
side zero-padded, so '1.2' and '1.2.0' are equal. Equal cores fall through
to semver prerelease precedence; build metadata never participates.
*/

// Compare returns -1, 0 or 1 depending on whether v sorts below, equal to
// or above other. The order is total: antisymmetric and transitive.
func (v *Version) Compare(other *Version) int {
	if c := compareSegments(v.segments, other.segments); c != 0 {
		return c
	}
	return comparePrerelease(v.pre, other.pre)
}

// Equal reports whether v and other compare equal. Equality is defined by
// Compare, not by string identity: '1.2' equals '1.2.0'.
func (v *Version) Equal(other *Version) bool {
	return v.Compare(other) == 0
}

// LessThan reports whether v sorts below other.
func (v *Version) LessThan(other *Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan reports whether v sorts above other.
func (v *Version) GreaterThan(other *Version) bool {
	return v.Compare(other) > 0
}

// LessThanOrEqual reports whether v sorts below or equal to other.
func (v *Version) LessThanOrEqual(other *Version) bool {
	return v.Compare(other) <= 0
}

// GreaterThanOrEqual reports whether v sorts above or equal to other.
func (v *Version) GreaterThanOrEqual(other *Version) bool {
	return v.Compare(other) >= 0
}

// compareSegments compares two segment sequences pairwise, zero-padding the
// shorter one to the longer's length.
func compareSegments(a, b []int64) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var as, bs int64
		if i < len(a) {
			as = a[i]
		}
		if i < len(b) {
			bs = b[i]
		}
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}
	}
	return 0
}

// comparePrerelease applies semver precedence: a stable version sorts above
// any prerelease, and prerelease identifier sequences are compared
// component-wise with numeric identifiers below alphanumeric ones.
func comparePrerelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	// A strict prefix sorts lower.
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

func compareIdentifier(a, b string) int {
	an := versionCfg.numericRgxCompiled.MatchString(a)
	bn := versionCfg.numericRgxCompiled.MatchString(b)
	switch {
	case an && bn:
		return compareNumericString(a, b)
	case an:
		return -1
	case bn:
		return 1
	}
	return strings.Compare(a, b)
}

// compareNumericString compares two purely numeric identifiers by value
// without parsing them, so arbitrarily long identifiers cannot overflow.
func compareNumericString(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}
