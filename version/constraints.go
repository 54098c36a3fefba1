package version

import (
	"fmt"
	"strings"
)

// Constraints represents an ordered AND group of constraints parsed from a
// comma-separated string (e.g. '>= 1.2, < 2.0'). An empty group is satisfied
// by every version.
type Constraints []*Constraint

// NewConstraints parses a comma-separated constraint group. Each clause is
// trimmed of surrounding whitespace before parsing; a blank input yields an
// empty group. The first failing clause's error is returned.
func NewConstraints(value string) (Constraints, error) {
	if strings.TrimSpace(value) == "" {
		return Constraints{}, nil
	}

	clauses := strings.Split(value, ",")
	result := make(Constraints, len(clauses))
	for i, clause := range clauses {
		constraint, err := NewConstraint(strings.TrimSpace(clause))
		if err != nil {
			return nil, fmt.Errorf("unable to parse constraints %q: %w", value, err)
		}
		result[i] = constraint
	}
	return result, nil
}

// Check reports whether the version satisfies every constraint in the group.
func (cs Constraints) Check(v *Version) bool {
	for _, c := range cs {
		if !c.Check(v) {
			return false
		}
	}
	return true
}

// AllowsAny reports whether the group is empty and therefore satisfied by
// any version.
func (cs Constraints) AllowsAny() bool {
	return len(cs) == 0
}

// MinVersion returns the greatest lower bound established by '>', '>=', '='
// or '~>' members, or nil when the group has no lower bound. When several
// members share the bound the earliest one wins, keeping the result
// deterministic for a given input order.
func (cs Constraints) MinVersion() *Version {
	var min *Version
	for _, c := range cs {
		switch c.operator {
		case ">", ">=", "=", "~>":
		default:
			continue
		}
		if min == nil || c.target.GreaterThan(min) {
			min = c.target
		}
	}
	return min
}

// MaxVersion returns the least upper bound established by '<', '<=', '='
// members or the upper edge of '~>', or nil when the group has no upper
// bound. Like MinVersion this is an advisory summary, not an interval
// solver: contradictory groups are not detected.
func (cs Constraints) MaxVersion() *Version {
	var max *Version
	for _, c := range cs {
		var bound *Version
		switch c.operator {
		case "<", "<=", "=":
			bound = c.target
		case "~>":
			bound = c.target.pessimisticUpperBound()
		}
		if bound == nil {
			continue
		}
		if max == nil || bound.LessThan(max) {
			max = bound
		}
	}
	return max
}

// String returns the canonical comma-separated form of the group.
func (cs Constraints) String() string {
	clauses := make([]string, len(cs))
	for i, c := range cs {
		clauses[i] = c.String()
	}
	return strings.Join(clauses, ", ")
}
