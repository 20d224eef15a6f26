package hashcode

import (
	"encoding/json"
	"fmt"
)

// DecodeJSON decodes data into a value of the given type. The encoding
// is the one WriteAsJSON produces: text as strings, numbers as
// numbers, bools as bools, seqs as arrays, options as null-or-value,
// pairs as two-element arrays, unions as {"left": ...} / {"right": ...}.
//
// Option nesting flattens on the wire: null always means the outermost
// absent, so Some(None) has no JSON form. Host-defined primitives have
// no JSON form either; hosts hash those by constructing values
// directly.
func DecodeJSON(key TypeKey, data []byte) (Value, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding %s: %v", key.Key(), err)
	}
	return decodeValue(key, raw)
}

func decodeValue(key TypeKey, raw interface{}) (Value, error) {
	switch k := key.(type) {
	case *TPrim:
		return decodePrim(k, raw)
	case *TSeq:
		arr, ok := raw.([]interface{})
		if !ok {
			return nil, decodeTypeError(key, raw)
		}
		elems := make([]Value, len(arr))
		for idx, rawElem := range arr {
			elem, err := decodeValue(k.elem, rawElem)
			if err != nil {
				return nil, err
			}
			elems[idx] = elem
		}
		return NewVSeq(k.elem, elems), nil
	case *TOption:
		if raw == nil {
			return NewVNone(k.elem), nil
		}
		val, err := decodeValue(k.elem, raw)
		if err != nil {
			return nil, err
		}
		return NewVSome(val), nil
	case *TPair:
		arr, ok := raw.([]interface{})
		if !ok || len(arr) != 2 {
			return nil, decodeTypeError(key, raw)
		}
		first, err := decodeValue(k.first, arr[0])
		if err != nil {
			return nil, err
		}
		second, err := decodeValue(k.second, arr[1])
		if err != nil {
			return nil, err
		}
		return NewVPair(first, second), nil
	case *TUnion:
		obj, ok := raw.(map[string]interface{})
		if !ok || len(obj) != 1 {
			return nil, decodeTypeError(key, raw)
		}
		if rawLeft, present := obj["left"]; present {
			val, err := decodeValue(k.left, rawLeft)
			if err != nil {
				return nil, err
			}
			return NewVLeft(val, k.right), nil
		}
		if rawRight, present := obj["right"]; present {
			val, err := decodeValue(k.right, rawRight)
			if err != nil {
				return nil, err
			}
			return NewVRight(k.left, val), nil
		}
		return nil, decodeTypeError(key, raw)
	}
	// validateKey already rejected anything else
	panic(fmt.Sprintf("unhandled type key %T", key))
}

func decodePrim(k *TPrim, raw interface{}) (Value, error) {
	switch k.name {
	case Text.name:
		s, ok := raw.(string)
		if !ok {
			return nil, decodeTypeError(k, raw)
		}
		return NewVText(s), nil
	case Number.name:
		f, ok := raw.(float64)
		if !ok {
			return nil, decodeTypeError(k, raw)
		}
		return NewVNumber(f), nil
	case Bool.name:
		b, ok := raw.(bool)
		if !ok {
			return nil, decodeTypeError(k, raw)
		}
		return NewVBool(b), nil
	}
	return nil, fmt.Errorf("no JSON form for host-defined type %s", k.name)
}

func decodeTypeError(key TypeKey, raw interface{}) error {
	return fmt.Errorf("can't decode %v as %s", raw, key.Key())
}
