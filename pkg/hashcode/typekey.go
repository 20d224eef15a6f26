package hashcode

import "fmt"

// TypeKey names a (possibly composite) type for registry lookup. Every
// key renders to a canonical string form (Key()), which is also the
// syntax ParseKey accepts; two keys name the same type iff their
// canonical strings match. Composite keys strictly shrink toward
// primitives, so a self-referential key is unrepresentable.
type TypeKey interface {
	Key() string
	typeKey()
}

// KeysEqual compares two keys by their canonical strings.
func KeysEqual(a TypeKey, b TypeKey) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}

// Primitive

type TPrim struct {
	name string
}

var _ TypeKey = &TPrim{}

// The leaf types every standard registry knows about.
var (
	Text   = &TPrim{name: "Text"}
	Number = &TPrim{name: "Number"}
	Bool   = &TPrim{name: "Bool"}
)

// NewPrimKey makes a key for a host-defined leaf type. Names are
// restricted to idents so canonical strings stay unambiguous.
func NewPrimKey(name string) (*TPrim, error) {
	if !isIdent(name) {
		return nil, &InvalidTypeKey{Key: name, Reason: "primitive names must be nonempty idents"}
	}
	return &TPrim{name: name}, nil
}

func (t *TPrim) Key() string { return t.name }

func (*TPrim) typeKey() {}

func isIdent(name string) bool {
	if len(name) == 0 {
		return false
	}
	for idx, c := range name {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		case c >= '0' && c <= '9':
			if idx == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Seq

type TSeq struct {
	elem TypeKey
}

var _ TypeKey = &TSeq{}

func NewSeqKey(elem TypeKey) *TSeq {
	return &TSeq{elem: elem}
}

func (t *TSeq) Elem() TypeKey { return t.elem }

func (t *TSeq) Key() string {
	return fmt.Sprintf("Seq<%s>", t.elem.Key())
}

func (*TSeq) typeKey() {}

// Option

type TOption struct {
	elem TypeKey
}

var _ TypeKey = &TOption{}

func NewOptionKey(elem TypeKey) *TOption {
	return &TOption{elem: elem}
}

func (t *TOption) Elem() TypeKey { return t.elem }

func (t *TOption) Key() string {
	return fmt.Sprintf("Option<%s>", t.elem.Key())
}

func (*TOption) typeKey() {}

// Pair

type TPair struct {
	first  TypeKey
	second TypeKey
}

var _ TypeKey = &TPair{}

func NewPairKey(first TypeKey, second TypeKey) *TPair {
	return &TPair{first: first, second: second}
}

func (t *TPair) First() TypeKey  { return t.first }
func (t *TPair) Second() TypeKey { return t.second }

func (t *TPair) Key() string {
	return fmt.Sprintf("Pair<%s, %s>", t.first.Key(), t.second.Key())
}

func (*TPair) typeKey() {}

// Union

type TUnion struct {
	left  TypeKey
	right TypeKey
}

var _ TypeKey = &TUnion{}

func NewUnionKey(left TypeKey, right TypeKey) *TUnion {
	return &TUnion{left: left, right: right}
}

func (t *TUnion) Left() TypeKey  { return t.left }
func (t *TUnion) Right() TypeKey { return t.right }

func (t *TUnion) Key() string {
	return fmt.Sprintf("Union<%s, %s>", t.left.Key(), t.right.Key())
}

func (*TUnion) typeKey() {}

// validateKey rejects keys that can't name a type: nils anywhere in the
// tree, bad primitive names, key types from outside this package. Keys
// shrink structurally, so the walk terminates.
func validateKey(key TypeKey) error {
	if key == nil {
		return &InvalidTypeKey{Reason: "nil type key"}
	}
	switch k := key.(type) {
	case *TPrim:
		if !isIdent(k.name) {
			return &InvalidTypeKey{Key: k.name, Reason: "primitive names must be nonempty idents"}
		}
		return nil
	case *TSeq:
		return validateKey(k.elem)
	case *TOption:
		return validateKey(k.elem)
	case *TPair:
		if err := validateKey(k.first); err != nil {
			return err
		}
		return validateKey(k.second)
	case *TUnion:
		if err := validateKey(k.left); err != nil {
			return err
		}
		return validateKey(k.right)
	default:
		return &InvalidTypeKey{Reason: fmt.Sprintf("unrecognized type key %T", key)}
	}
}
