package util

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
)

// AreEqualJSON compares two JSON documents structurally.
func AreEqualJSON(s1, s2 string) (bool, error) {
	var o1 interface{}
	var o2 interface{}

	if err := json.Unmarshal([]byte(s1), &o1); err != nil {
		return false, fmt.Errorf("error parsing string 1: %s", err.Error())
	}
	if err := json.Unmarshal([]byte(s2), &o2); err != nil {
		return false, fmt.Errorf("error parsing string 2: %s", err.Error())
	}

	return reflect.DeepEqual(o1, o2), nil
}

// ToJSON marshals v, panicking on failure. For test expectations only.
func ToJSON(v interface{}) string {
	bytes, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

// AssertError fails the test if the actual error doesn't match the
// expected error string (empty string meaning "no error expected").
// Returns whether the caller should skip the rest of the case, i.e.
// whether an error was expected and matched.
func AssertError(t *testing.T, caseIdx int, expected string, err error) bool {
	if err != nil {
		if expected == "" {
			t.Fatalf(`case %d: expected success; got error "%s"`, caseIdx, err.Error())
			return false
		}
		if err.Error() != expected {
			t.Fatalf(`case %d: expected error "%s"; got "%s"`, caseIdx, expected, err.Error())
			return false
		}
		return true
	}
	if expected != "" {
		t.Fatalf(`case %d: expected error "%s"; got success`, caseIdx, expected)
		return false
	}
	return false
}
