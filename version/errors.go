package version

import "errors"

// Parse failure classes. Every error returned by the parsing constructors
// wraps exactly one of these, so callers can branch with errors.Is while
// the message still names the offending input.
var (
	// ErrEmptyVersion is returned when the input string is empty.
	ErrEmptyVersion = errors.New("version string is empty")
	// ErrMalformedVersion is returned when the input does not match the version grammar.
	ErrMalformedVersion = errors.New("malformed version")
	// ErrSegmentTooLarge is returned when a numeric segment exceeds the 64-bit signed range.
	ErrSegmentTooLarge = errors.New("version segment out of range")
	// ErrSegmentCount is returned by strict parsing when the core is not exactly major.minor.patch.
	ErrSegmentCount = errors.New("version must have exactly three segments")
	// ErrLeadingZero is returned by strict parsing when a numeric segment or
	// numeric prerelease identifier carries a leading zero.
	ErrLeadingZero = errors.New("leading zero in numeric segment")
	// ErrUnknownOperator is returned when a constraint clause starts with an unsupported operator.
	ErrUnknownOperator = errors.New("unknown constraint operator")
	// ErrIncrementOverflow is returned when bumping a segment already at the maximum value.
	ErrIncrementOverflow = errors.New("segment increment overflows")
)
