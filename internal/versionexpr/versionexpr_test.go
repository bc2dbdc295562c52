package versionexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Minimum(t *testing.T) {
	ok, err := Evaluate("1.2.0", "1.3.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate("1.2.0", "1.1.9")
	require.NoError(t, err)
	assert.False(t, ok)

	// The named version itself is included.
	ok, err = Evaluate("1.2.0", "1.2.0")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluate_Exact(t *testing.T) {
	ok, err := Evaluate("[2.4.5]", "2.4.5")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate("[2.4.5]", "2.4.6")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluate_Range(t *testing.T) {
	cases := []struct {
		expr, version string
		want          bool
	}{
		{"[1.2.0,3.4.0)", "1.2.0", true},
		{"[1.2.0,3.4.0)", "3.4.0", false},
		{"[1.2.0,3.4.0)", "2.0.0", true},
		{"(1.2.0,3.4.0]", "1.2.0", false},
		{"(1.2.0,3.4.0]", "3.4.0", true},
		{"[1.2.0,)", "99.0.0", true},
		{"(,2.0.0]", "0.1.0", true},
		{"(,2.0.0]", "2.0.1", false},
	}
	for _, c := range cases {
		ok, err := Evaluate(c.expr, c.version)
		require.NoError(t, err, c.expr)
		assert.Equal(t, c.want, ok, "%s contains %s", c.expr, c.version)
	}
}

func TestEvaluate_Prerelease(t *testing.T) {
	ok, err := Evaluate("2.1.0-preview.7", "2.1.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate("2.1.0-preview.7", "2.1.0-preview.2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"[1.2.0,3.4.0",
		"(2.4.5)",
		"[3.0.0,1.0.0]",
		"banana",
		"[1.0.0,pear)",
	} {
		_, err := Parse(expr)
		assert.Error(t, err, expr)
	}
}

func TestContains_InvalidVersion(t *testing.T) {
	r, err := Parse("[1.0.0,2.0.0]")
	require.NoError(t, err)
	_, err = r.Contains("not-a-version")
	assert.Error(t, err)
}
