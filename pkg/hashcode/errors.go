package hashcode

import "fmt"

// DuplicateRegistration: at most one strategy per type key. Fatal to
// the Register call; the registry is left as it was.
type DuplicateRegistration struct {
	Key string
}

func (e *DuplicateRegistration) Error() string {
	return fmt.Sprintf("strategy already registered for type key %s", e.Key)
}

// UnknownType: no strategy for a primitive key, either directly or
// somewhere inside a composite. Recoverable; register and retry.
type UnknownType struct {
	Key string
}

func (e *UnknownType) Error() string {
	return fmt.Sprintf("no strategy registered for type key %s", e.Key)
}

// InvalidTypeKey: the key can't name a type at all. Always a caller
// bug; never worth retrying.
type InvalidTypeKey struct {
	Key    string
	Reason string
}

func (e *InvalidTypeKey) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid type key: %s", e.Reason)
	}
	return fmt.Sprintf("invalid type key %s: %s", e.Key, e.Reason)
}

// WrongValueType: a strategy was applied to a value outside its type.
// Well-typed callers never see this.
type WrongValueType struct {
	Want string
	Got  string
}

func (e *WrongValueType) Error() string {
	return fmt.Sprintf("wrong value type: want %s; got %s", e.Want, e.Got)
}
