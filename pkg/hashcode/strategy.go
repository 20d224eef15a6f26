package hashcode

import (
	"strconv"
	"unicode/utf16"
)

// Strategy tags a type key with a pure function computing hash codes
// for that type's values. Strategies are immutable and stateless;
// composite strategies own their element strategies and nothing else,
// so they're freely shareable across goroutines.
type Strategy struct {
	key   TypeKey
	apply func(Value) (Code, error)
}

// NewStrategy wraps an apply function. Hosts registering their own leaf
// types build strategies this way; the function must satisfy the hash
// law (equal values, equal codes) and be deterministic.
func NewStrategy(key TypeKey, apply func(Value) (Code, error)) *Strategy {
	return &Strategy{key: key, apply: apply}
}

func (s *Strategy) Key() TypeKey { return s.key }

// Apply hashes one value. The only possible error is WrongValueType.
func (s *Strategy) Apply(v Value) (Code, error) {
	return s.apply(v)
}

// NewTextStrategy hashes text by folding Mix over its UTF-16 code
// units, starting from 0 past the end of the string: the accumulated
// tail hash rides on the left, the current unit on the right. Empty
// text is 0. The order matters; Mix is not commutative.
func NewTextStrategy() *Strategy {
	return NewStrategy(Text, func(v Value) (Code, error) {
		t, ok := v.(*VText)
		if !ok {
			return 0, wrongType(Text, v)
		}
		return hashText(string(*t)), nil
	})
}

func hashText(s string) Code {
	units := utf16.Encode([]rune(s))
	var h Code
	for idx := len(units) - 1; idx >= 0; idx-- {
		h = Mix(h, Code(units[idx]))
	}
	return h
}

// NewNumberStrategy hashes a number as the text of its canonical
// decimal form, so numerically equal values can't hash apart.
func NewNumberStrategy() *Strategy {
	return NewStrategy(Number, func(v Value) (Code, error) {
		n, ok := v.(*VNumber)
		if !ok {
			return 0, wrongType(Number, v)
		}
		return hashText(canonicalNumber(float64(*n))), nil
	})
}

// canonicalNumber is the fixed formatting the number strategy hashes:
// shortest round-trip form, negative zero normalized to zero, NaN as
// "NaN", infinities as "+Inf"/"-Inf". No locale dependence anywhere.
func canonicalNumber(f float64) string {
	if f == 0 {
		// drops the sign of -0, which compares equal to 0
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// NewBoolStrategy: false is 0, true is 1. No computation.
func NewBoolStrategy() *Strategy {
	return NewStrategy(Bool, func(v Value) (Code, error) {
		b, ok := v.(*VBool)
		if !ok {
			return 0, wrongType(Bool, v)
		}
		if bool(*b) {
			return 1, nil
		}
		return 0, nil
	})
}

func wrongType(want TypeKey, got Value) error {
	gotKey := "nil"
	if got != nil {
		gotKey = got.GetType().Key()
	}
	return &WrongValueType{Want: want.Key(), Got: gotKey}
}
