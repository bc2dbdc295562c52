// Package tristate provides the three-valued boolean used to represent
// per-field agreement across a multi-record selection: False, True, or
// Mixed ("the selected records disagree").
package tristate

import "errors"

// Value is a three-valued boolean.
type Value int8

const (
	False Value = 0
	True  Value = 1
	Mixed Value = -1
)

// ErrMixed is returned when a Mixed value is coerced to a concrete bool.
// Callers must resolve mixedness before coercing.
var ErrMixed = errors.New("tristate: value is mixed")

// FromBool converts a concrete bool to a Value.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Bool converts v to a concrete bool. It fails with ErrMixed for Mixed.
func (v Value) Bool() (bool, error) {
	if v == Mixed {
		return false, ErrMixed
	}
	return v == True, nil
}

// Invert flips True and False. Mixed is a fixed point.
func (v Value) Invert() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Mixed
	}
}

// Combine folds two values: equal inputs keep their value, unequal inputs
// collapse to Mixed. Commutative and associative; Mixed is absorbing.
func Combine(a, b Value) Value {
	if a == b {
		return a
	}
	return Mixed
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "mixed"
	}
}
