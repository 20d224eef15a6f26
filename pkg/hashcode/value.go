package hashcode

import (
	"bufio"
	"bytes"
	"encoding/json"
)

// Value is a runtime value a strategy can hash. Equality travels with
// the value, since the hash law is stated against it: whenever
// a.Equal(b), a and b must hash to the same code.
type Value interface {
	GetType() TypeKey
	Equal(Value) bool
	WriteAsJSON(*bufio.Writer) error
}

// EncodeJSON renders a value in its canonical JSON form: numbers in
// canonical decimal, no whitespace. The index stores this form so that
// equality checks against stored entries see exactly what was hashed.
func EncodeJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := v.WriteAsJSON(w); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Text

type VText string

var _ Value = NewVText("")

func NewVText(s string) *VText {
	v := VText(s)
	return &v
}

func (v *VText) GetType() TypeKey { return Text }

func (v *VText) Equal(other Value) bool {
	o, ok := other.(*VText)
	return ok && *v == *o
}

func (v *VText) WriteAsJSON(w *bufio.Writer) error {
	encoded, err := json.Marshal(string(*v))
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}

// Number

type VNumber float64

var _ Value = NewVNumber(0)

func NewVNumber(f float64) *VNumber {
	v := VNumber(f)
	return &v
}

func (v *VNumber) GetType() TypeKey { return Number }

// Equal is float equality: -0 equals 0; NaN equals nothing, itself
// included, which makes the hash law vacuous for NaN.
func (v *VNumber) Equal(other Value) bool {
	o, ok := other.(*VNumber)
	return ok && *v == *o
}

// WriteAsJSON writes the canonical decimal form. NaN and the infinities
// render as their canonical hash strings, which are not valid JSON; the
// wire protocol can never produce such values, so only hosts
// constructing them directly ever see that.
func (v *VNumber) WriteAsJSON(w *bufio.Writer) error {
	_, err := w.WriteString(canonicalNumber(float64(*v)))
	return err
}

// Bool

type VBool bool

var _ Value = NewVBool(false)

func NewVBool(b bool) *VBool {
	v := VBool(b)
	return &v
}

func (v *VBool) GetType() TypeKey { return Bool }

func (v *VBool) Equal(other Value) bool {
	o, ok := other.(*VBool)
	return ok && *v == *o
}

func (v *VBool) WriteAsJSON(w *bufio.Writer) error {
	out := "false"
	if bool(*v) {
		out = "true"
	}
	_, err := w.WriteString(out)
	return err
}

// Seq

type VSeq struct {
	elemType TypeKey
	elems    []Value
}

var _ Value = NewVSeq(Bool, nil)

// NewVSeq takes the element type explicitly so empty sequences still
// know theirs.
func NewVSeq(elemType TypeKey, elems []Value) *VSeq {
	return &VSeq{elemType: elemType, elems: elems}
}

func (v *VSeq) GetType() TypeKey { return NewSeqKey(v.elemType) }

func (v *VSeq) Equal(other Value) bool {
	o, ok := other.(*VSeq)
	if !ok || len(v.elems) != len(o.elems) {
		return false
	}
	for idx, elem := range v.elems {
		if !elem.Equal(o.elems[idx]) {
			return false
		}
	}
	return true
}

func (v *VSeq) WriteAsJSON(w *bufio.Writer) error {
	if _, err := w.WriteString("["); err != nil {
		return err
	}
	for idx, elem := range v.elems {
		if idx > 0 {
			if _, err := w.WriteString(","); err != nil {
				return err
			}
		}
		if err := elem.WriteAsJSON(w); err != nil {
			return err
		}
	}
	_, err := w.WriteString("]")
	return err
}

// Option

type VNone struct {
	elemType TypeKey
}

var _ Value = NewVNone(Bool)

func NewVNone(elemType TypeKey) *VNone {
	return &VNone{elemType: elemType}
}

func (v *VNone) GetType() TypeKey { return NewOptionKey(v.elemType) }

func (v *VNone) Equal(other Value) bool {
	_, ok := other.(*VNone)
	return ok
}

func (v *VNone) WriteAsJSON(w *bufio.Writer) error {
	_, err := w.WriteString("null")
	return err
}

type VSome struct {
	val Value
}

var _ Value = NewVSome(NewVBool(true))

func NewVSome(val Value) *VSome {
	return &VSome{val: val}
}

func (v *VSome) GetType() TypeKey { return NewOptionKey(v.val.GetType()) }

func (v *VSome) Value() Value { return v.val }

func (v *VSome) Equal(other Value) bool {
	o, ok := other.(*VSome)
	return ok && v.val.Equal(o.val)
}

func (v *VSome) WriteAsJSON(w *bufio.Writer) error {
	return v.val.WriteAsJSON(w)
}

// Pair

type VPair struct {
	first  Value
	second Value
}

var _ Value = NewVPair(NewVBool(true), NewVBool(false))

func NewVPair(first Value, second Value) *VPair {
	return &VPair{first: first, second: second}
}

func (v *VPair) GetType() TypeKey {
	return NewPairKey(v.first.GetType(), v.second.GetType())
}

func (v *VPair) First() Value  { return v.first }
func (v *VPair) Second() Value { return v.second }

func (v *VPair) Equal(other Value) bool {
	o, ok := other.(*VPair)
	return ok && v.first.Equal(o.first) && v.second.Equal(o.second)
}

func (v *VPair) WriteAsJSON(w *bufio.Writer) error {
	if _, err := w.WriteString("["); err != nil {
		return err
	}
	if err := v.first.WriteAsJSON(w); err != nil {
		return err
	}
	if _, err := w.WriteString(","); err != nil {
		return err
	}
	if err := v.second.WriteAsJSON(w); err != nil {
		return err
	}
	_, err := w.WriteString("]")
	return err
}

// Union

type VLeft struct {
	val       Value
	rightType TypeKey
}

var _ Value = NewVLeft(NewVBool(true), Text)

// NewVLeft carries the right arm's type so GetType can name the whole
// union.
func NewVLeft(val Value, rightType TypeKey) *VLeft {
	return &VLeft{val: val, rightType: rightType}
}

func (v *VLeft) GetType() TypeKey {
	return NewUnionKey(v.val.GetType(), v.rightType)
}

func (v *VLeft) Value() Value { return v.val }

func (v *VLeft) Equal(other Value) bool {
	o, ok := other.(*VLeft)
	return ok && v.val.Equal(o.val)
}

func (v *VLeft) WriteAsJSON(w *bufio.Writer) error {
	if _, err := w.WriteString(`{"left":`); err != nil {
		return err
	}
	if err := v.val.WriteAsJSON(w); err != nil {
		return err
	}
	_, err := w.WriteString("}")
	return err
}

type VRight struct {
	leftType TypeKey
	val      Value
}

var _ Value = NewVRight(Text, NewVBool(true))

func NewVRight(leftType TypeKey, val Value) *VRight {
	return &VRight{leftType: leftType, val: val}
}

func (v *VRight) GetType() TypeKey {
	return NewUnionKey(v.leftType, v.val.GetType())
}

func (v *VRight) Value() Value { return v.val }

func (v *VRight) Equal(other Value) bool {
	o, ok := other.(*VRight)
	return ok && v.val.Equal(o.val)
}

func (v *VRight) WriteAsJSON(w *bufio.Writer) error {
	if _, err := w.WriteString(`{"right":`); err != nil {
		return err
	}
	if err := v.val.WriteAsJSON(w); err != nil {
		return err
	}
	_, err := w.WriteString("}")
	return err
}
