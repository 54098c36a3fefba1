package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstraints_Parts(t *testing.T) {
	cs, err := NewConstraints(" >= 1.0.0 ,  < 2.0.0 , != 1.5.0 ")
	require.NoError(t, err)

	require.Len(t, cs, 3)
	assert.Equal(t, ">= 1.0.0, < 2.0.0, != 1.5.0", cs.String())
	assert.False(t, cs.AllowsAny())
}

func TestNewConstraints_Empty(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		cs, err := NewConstraints(raw)
		require.NoError(t, err)
		assert.True(t, cs.AllowsAny())
		assert.True(t, cs.Check(mustVersion(t, "0.0.1")), "empty set must allow any version")
		assert.Nil(t, cs.MinVersion())
		assert.Nil(t, cs.MaxVersion())
	}
}

func TestNewConstraints_Error(t *testing.T) {
	cs, err := NewConstraints(">= 1.0.0, nope, < 2.0.0")
	assert.Nil(t, cs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedVersion)
}

func TestConstraints_Check(t *testing.T) {
	// Table test
	cases := []struct {
		Constraints string
		Version     string
		Result      bool
	}{
		{">= 1.0.0, < 2.0.0", "1.5.0", true},
		{">= 1.0.0, < 2.0.0", "1.0.0", true},
		{">= 1.0.0, < 2.0.0", "2.0.0", false},
		{">= 1.0.0, < 2.0.0", "0.9.9", false},
		{">= 1.0, < 2.0, != 1.5", "1.5.0", false},
		{">= 1.0, < 2.0, != 1.5", "1.6", true},
		{"~> 1.2, != 1.2.7", "1.2.6", true},
		{"~> 1.2, != 1.2.7", "1.2.7", false},
		{"1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.4", false},
	}

	for _, c := range cases {
		cs, err := NewConstraints(c.Constraints)
		require.NoError(t, err, "parsing %q", c.Constraints)
		got := cs.Check(mustVersion(t, c.Version))
		assert.Equal(t, c.Result, got, "%q check %q", c.Constraints, c.Version)
	}
}

func TestConstraints_MinMaxVersion(t *testing.T) {
	cases := []struct {
		Constraints string
		Min, Max    string // "" means nil
	}{
		{">= 1.0.0, < 2.0.0", "1.0.0", "2.0.0"},
		{"> 0.9, <= 2.0", "0.9", "2.0"},
		{"= 1.5.0", "1.5.0", "1.5.0"},
		{"!= 1.5.0", "", ""},
		{"< 2.0", "", "2.0"},
		{"> 1.0", "1.0", ""},
		{"~> 1.2.3", "1.2.3", "1.3.0"},
		{"~> 1.2", "1.2", "1.3"},
		{">= 1.0, >= 1.4, > 1.2", "1.4", ""},
		{"< 3.0, <= 2.5, < 2.7", "", "2.5"},
		{"~> 1.2, < 1.2.5", "1.2", "1.2.5"},
	}

	for _, c := range cases {
		cs, err := NewConstraints(c.Constraints)
		require.NoError(t, err, "parsing %q", c.Constraints)

		min, max := cs.MinVersion(), cs.MaxVersion()
		if c.Min == "" {
			assert.Nil(t, min, "min of %q", c.Constraints)
		} else {
			require.NotNil(t, min, "min of %q", c.Constraints)
			assert.Equal(t, c.Min, min.String(), "min of %q", c.Constraints)
		}
		if c.Max == "" {
			assert.Nil(t, max, "max of %q", c.Constraints)
		} else {
			require.NotNil(t, max, "max of %q", c.Constraints)
			assert.Equal(t, c.Max, max.String(), "max of %q", c.Constraints)
		}
	}
}

// Deterministic tie-breaking: with equal bounds the earliest clause wins, so
// the returned Version carries the first clause's target.
func TestConstraints_MinVersionTie(t *testing.T) {
	cs, err := NewConstraints(">= 1.2, > 1.2.0")
	require.NoError(t, err)

	min := cs.MinVersion()
	require.NotNil(t, min)
	assert.Equal(t, "1.2", min.String())
}
