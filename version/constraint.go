package version

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

/*
Single version constraints: an operator paired with a target version
(e.g. '>= 1.2'). Constraints are combined into AND groups by Constraints.
*/

// constraintOprFunc represents a constraint operator check function.
// It returns true if the version is satisfied by the constraint.
type constraintOprFunc func(v *Version, c *Constraint) bool

// constraintConfig is used to store the constraint parser configuration.
type constraintConfig struct {
	operators         map[string]constraintOprFunc // Supported operators mapped to check functions (e.g. '>=')
	clauseRgxCompiled *regexp.Regexp               // Compiled clause regexp splitting operator from version
}

// constraintCfg is the global constraint parser configuration.
var constraintCfg constraintConfig

// Constraint parser config initialization and expression compiling.
func init() {
	constraintCfg.operators = map[string]constraintOprFunc{
		"":   constraintEqual,
		"=":  constraintEqual,
		"!=": constraintNotEqual,
		">":  constraintGreaterThan,
		"<":  constraintLessThan,
		">=": constraintGreaterThanEqual,
		"<=": constraintLessThanEqual,
		"~>": constraintPessimistic,
	}

	// The leading punctuation run is the operator candidate; it is validated
	// against the operator map after matching.
	constraintCfg.clauseRgxCompiled = regexp.MustCompile(`^([=!<>~^]*)\s*(.*)$`)
}

func constraintEqual(v *Version, c *Constraint) bool {
	return v.Compare(c.target) == 0
}

func constraintNotEqual(v *Version, c *Constraint) bool {
	return v.Compare(c.target) != 0
}

func constraintGreaterThan(v *Version, c *Constraint) bool {
	return v.Compare(c.target) > 0
}

func constraintLessThan(v *Version, c *Constraint) bool {
	return v.Compare(c.target) < 0
}

func constraintGreaterThanEqual(v *Version, c *Constraint) bool {
	return v.Compare(c.target) >= 0
}

func constraintLessThanEqual(v *Version, c *Constraint) bool {
	return v.Compare(c.target) <= 0
}

func constraintPessimistic(v *Version, c *Constraint) bool {
	if v.Compare(c.target) < 0 {
		return false
	}
	upper := c.target.pessimisticUpperBound()
	if upper == nil {
		return true
	}
	return v.Compare(upper) < 0
}

// pessimisticUpperBound returns the exclusive upper edge implied by '~>'
// for this target. The boundary depends on how many segments the target
// originally specified: '~> 1.2' and '~> 1.2.3' both cap below 1.3, while
// '~> 2' caps below 3. Returns nil when the bumped segment is already at
// the maximum value, meaning no finite upper edge exists.
func (v *Version) pessimisticUpperBound() *Version {
	segments := v.Segments()
	idx := len(segments) - 2
	if len(segments) <= 2 {
		idx = len(segments) - 1
	}
	if segments[idx] == math.MaxInt64 {
		return nil
	}
	segments[idx]++
	for i := idx + 1; i < len(segments); i++ {
		segments[i] = 0
	}
	return newFromSegments(segments)
}

// Constraint represents a single version constraint (e.g. '>= 1.2.0').
type Constraint struct {
	check    constraintOprFunc // func used to check a version against this constraint
	operator string
	target   *Version
	original string
}

// NewConstraint parses a single constraint clause: an optional operator
// (defaulting to '='), optional whitespace and a version string.
func NewConstraint(value string) (*Constraint, error) {
	clause := strings.TrimSpace(value)
	matches := constraintCfg.clauseRgxCompiled.FindStringSubmatch(clause)
	if matches == nil {
		return nil, fmt.Errorf("constraint %q is not supported: %w", value, ErrMalformedVersion)
	}
	operator, rest := matches[1], matches[2]

	check, ok := constraintCfg.operators[operator]
	if !ok {
		return nil, fmt.Errorf("constraint %q: operator %q: %w", value, operator, ErrUnknownOperator)
	}
	if operator == "" {
		operator = "="
	}

	target, err := NewVersion(rest)
	if err != nil {
		return nil, fmt.Errorf("constraint %q: %w", value, err)
	}

	return &Constraint{check: check, operator: operator, target: target, original: clause}, nil
}

// newOperatorConstraint builds a constraint from a known operator and a raw
// version string. Backs the named constructors.
func newOperatorConstraint(operator, value string) (*Constraint, error) {
	target, err := NewVersion(value)
	if err != nil {
		return nil, fmt.Errorf("constraint %q %q: %w", operator, value, err)
	}
	return &Constraint{
		check:    constraintCfg.operators[operator],
		operator: operator,
		target:   target,
		original: operator + " " + value,
	}, nil
}

// AtLeast returns the constraint '>= value'.
func AtLeast(value string) (*Constraint, error) {
	return newOperatorConstraint(">=", value)
}

// Below returns the constraint '< value'.
func Below(value string) (*Constraint, error) {
	return newOperatorConstraint("<", value)
}

// Exactly returns the constraint '= value'.
func Exactly(value string) (*Constraint, error) {
	return newOperatorConstraint("=", value)
}

// Pessimistic returns the constraint '~> value'.
func Pessimistic(value string) (*Constraint, error) {
	return newOperatorConstraint("~>", value)
}

// Range returns the constraint pair '>= min, < max'.
func Range(min, max string) (Constraints, error) {
	lower, err := AtLeast(min)
	if err != nil {
		return nil, err
	}
	upper, err := Below(max)
	if err != nil {
		return nil, err
	}
	return Constraints{lower, upper}, nil
}

// Check reports whether the version satisfies the constraint.
func (c *Constraint) Check(v *Version) bool {
	return c.check(v, c)
}

// Operator returns the constraint's operator ('=' when it was omitted).
func (c *Constraint) Operator() string {
	return c.operator
}

// Target returns the constraint's target version.
func (c *Constraint) Target() *Version {
	return c.target
}

// String returns the canonical clause form, operator included.
func (c *Constraint) String() string {
	return c.operator + " " + c.target.String()
}
