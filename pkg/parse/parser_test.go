package parse

import (
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input    string
		expected Statement
		isErr    bool
	}{
		{
			input: `HASH 'Bool' 'true'`,
			expected: Statement{
				Hash: &Hash{TypeKey: "Bool", Value: "true"},
			},
		},
		{
			// keywords are case-insensitive; quoted args are not upcased
			input: `hash 'Seq<Bool>' '[true, false]'`,
			expected: Statement{
				Hash: &Hash{TypeKey: "Seq<Bool>", Value: "[true, false]"},
			},
		},
		{
			input: `CHECK 'Pair<Text, Number>' '["a", 1]' '["a", 1.0]'`,
			expected: Statement{
				Check: &Check{
					TypeKey: "Pair<Text, Number>",
					A:       `["a", 1]`,
					B:       `["a", 1.0]`,
				},
			},
		},
		{
			input: `PUT 'Text' '"hello"'`,
			expected: Statement{
				Put: &Put{TypeKey: "Text", Value: `"hello"`},
			},
		},
		{
			input: `LOOKUP 'Option<Number>' 'null'`,
			expected: Statement{
				Lookup: &Lookup{TypeKey: "Option<Number>", Value: "null"},
			},
		},
		{
			input: `RESOLVE 'Union<Text, Bool>'`,
			expected: Statement{
				Resolve: &Resolve{TypeKey: "Union<Text, Bool>"},
			},
		},
		{
			input: `FROB 'Bool' 'true'`,
			isErr: true,
		},
		{
			input: `HASH 'Bool'`,
			isErr: true,
		},
		{
			input: `HASH`,
			isErr: true,
		},
	}
	for idx, testCase := range cases {
		actual, err := Parse(testCase.input)
		if testCase.isErr {
			if err == nil {
				t.Fatalf("case %d: expected parse error; got %+v", idx, actual)
			}
			continue
		}
		if err != nil {
			t.Fatalf("case %d: %v", idx, err)
		}
		assertStatementsEqual(t, idx, &testCase.expected, actual)
	}
}

func assertStatementsEqual(t *testing.T, idx int, expected *Statement, actual *Statement) {
	t.Helper()
	switch {
	case expected.Hash != nil:
		if actual.Hash == nil || *actual.Hash != *expected.Hash {
			t.Fatalf("case %d: expected %+v; got %+v", idx, expected.Hash, actual.Hash)
		}
	case expected.Check != nil:
		if actual.Check == nil || *actual.Check != *expected.Check {
			t.Fatalf("case %d: expected %+v; got %+v", idx, expected.Check, actual.Check)
		}
	case expected.Put != nil:
		if actual.Put == nil || *actual.Put != *expected.Put {
			t.Fatalf("case %d: expected %+v; got %+v", idx, expected.Put, actual.Put)
		}
	case expected.Lookup != nil:
		if actual.Lookup == nil || *actual.Lookup != *expected.Lookup {
			t.Fatalf("case %d: expected %+v; got %+v", idx, expected.Lookup, actual.Lookup)
		}
	case expected.Resolve != nil:
		if actual.Resolve == nil || *actual.Resolve != *expected.Resolve {
			t.Fatalf("case %d: expected %+v; got %+v", idx, expected.Resolve, actual.Resolve)
		}
	}
}
