// Package versionexpr evaluates the version-range expressions used by
// version defines. Three forms are accepted:
//
//	1.2.3           minimum: the named version or anything later
//	[1.2.3]         exact: only the named version
//	[1.2,3.4)       range: brackets choose inclusive, parens exclusive,
//	                either bound may be empty (unbounded)
package versionexpr

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Range is a parsed version-range expression.
type Range struct {
	min, max         string // canonical "v"-prefixed versions, "" = unbounded
	minIncl, maxIncl bool
}

// Parse parses an expression into a Range.
func Parse(expr string) (Range, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Range{}, fmt.Errorf("empty version expression")
	}

	open := expr[0]
	if open != '[' && open != '(' {
		// Bare version: that version or later.
		v, err := canonical(expr)
		if err != nil {
			return Range{}, err
		}
		return Range{min: v, minIncl: true}, nil
	}

	shut := expr[len(expr)-1]
	if shut != ']' && shut != ')' {
		return Range{}, fmt.Errorf("unterminated version range %q", expr)
	}
	inner := expr[1 : len(expr)-1]

	if !strings.Contains(inner, ",") {
		// Exact form [1.2.3].
		if open != '[' || shut != ']' {
			return Range{}, fmt.Errorf("exact version %q requires square brackets", expr)
		}
		v, err := canonical(inner)
		if err != nil {
			return Range{}, err
		}
		return Range{min: v, minIncl: true, max: v, maxIncl: true}, nil
	}

	parts := strings.SplitN(inner, ",", 2)
	r := Range{minIncl: open == '[', maxIncl: shut == ']'}
	var err error
	if strings.TrimSpace(parts[0]) != "" {
		if r.min, err = canonical(parts[0]); err != nil {
			return Range{}, err
		}
	}
	if strings.TrimSpace(parts[1]) != "" {
		if r.max, err = canonical(parts[1]); err != nil {
			return Range{}, err
		}
	}
	if r.min != "" && r.max != "" && semver.Compare(r.min, r.max) > 0 {
		return Range{}, fmt.Errorf("inverted version range %q", expr)
	}
	return r, nil
}

// Contains reports whether version falls inside the range.
func (r Range) Contains(version string) (bool, error) {
	v, err := canonical(version)
	if err != nil {
		return false, err
	}
	if r.min != "" {
		c := semver.Compare(v, r.min)
		if c < 0 || (c == 0 && !r.minIncl) {
			return false, nil
		}
	}
	if r.max != "" {
		c := semver.Compare(v, r.max)
		if c > 0 || (c == 0 && !r.maxIncl) {
			return false, nil
		}
	}
	return true, nil
}

// Evaluate parses expr and tests version against it.
func Evaluate(expr, version string) (bool, error) {
	r, err := Parse(expr)
	if err != nil {
		return false, err
	}
	return r.Contains(version)
}

// canonical normalizes a version string to the "v"-prefixed form the
// semver package compares.
func canonical(version string) (string, error) {
	v := "v" + strings.TrimSpace(version)
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", strings.TrimSpace(version))
	}
	return v, nil
}
