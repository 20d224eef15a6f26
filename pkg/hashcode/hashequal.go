package hashcode

import "errors"

// HashEqual reports whether two values of the same type hash to the
// same code. It resolves the strategy once and applies it to both.
//
// This is a pre-filter, not an equality test: it's reflexive and
// symmetric, and a == b guarantees a true result, but distinct values
// collide, so a true result still needs confirming with Equal before
// anything treats the values as duplicates.
func HashEqual(reg *Registry, a Value, b Value) (bool, error) {
	if a == nil || b == nil {
		return false, errors.New("can't hash a nil value")
	}
	key := a.GetType()
	if !KeysEqual(key, b.GetType()) {
		return false, &WrongValueType{Want: key.Key(), Got: b.GetType().Key()}
	}
	strategy, err := reg.Resolve(key)
	if err != nil {
		return false, err
	}
	codeA, err := strategy.Apply(a)
	if err != nil {
		return false, err
	}
	codeB, err := strategy.Apply(b)
	if err != nil {
		return false, err
	}
	return codeA == codeB, nil
}
