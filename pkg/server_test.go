package structhash

import (
	"testing"
)

func TestStatements(t *testing.T) {
	runSimpleTestScript(t, []simpleTestStmt{
		{
			stmt:   `HASH 'Bool' 'true'`,
			result: `{"type": "Bool", "code": 1}`,
		},
		{
			stmt:   `HASH 'Text' '"ab"'`,
			result: `{"type": "Text", "code": 42121}`,
		},
		{
			stmt:   `HASH 'Seq<Bool>' '[true]'`,
			result: `{"type": "Seq<Bool>", "code": 73}`,
		},
		{
			stmt:   `HASH 'Option<Bool>' 'true'`,
			result: `{"type": "Option<Bool>", "code": 124}`,
		},
		{
			stmt:   `HASH 'Option<Bool>' 'null'`,
			result: `{"type": "Option<Bool>", "code": 0}`,
		},
		{
			stmt:   `HASH 'Union<Bool, Bool>' '{"right": true}'`,
			result: `{"type": "Union<Bool, Bool>", "code": 270}`,
		},
		{
			stmt:  `HASH 'Seq' '[]'`,
			error: `invalid type key Seq: Seq takes 1 parameter(s); given 0`,
		},
		{
			stmt:  `HASH 'Foo' '1'`,
			error: `bad value for type Foo: no JSON form for host-defined type Foo`,
		},
		{
			stmt:  `HASH 'Bool' '3'`,
			error: `bad value for type Bool: can't decode 3 as Bool`,
		},
		{
			// 1.0 and 1 canonicalize to the same decimal string.
			stmt:   `CHECK 'Seq<Number>' '[1, 2]' '[1.0, 2.0]'`,
			result: `{"type": "Seq<Number>", "hash_equal": true}`,
		},
		{
			stmt:   `CHECK 'Number' '1' '2'`,
			result: `{"type": "Number", "hash_equal": false}`,
		},
		{
			stmt: `RESOLVE 'Pair<Text, Option<Number>>'`,
			ack:  `RESOLVED Pair<Text, Option<Number>>`,
		},
	})
}

func TestPutLookup(t *testing.T) {
	ts, err := newTestServer()
	if err != nil {
		t.Fatal(err)
	}
	defer ts.Close()

	first, err := ts.client.Put(`Pair<Text, Number>`, `["a", 1]`)
	if err != nil {
		t.Fatal(err)
	}
	if first.Existing {
		t.Fatal("expected first put to insert")
	}
	if first.ID == "" {
		t.Fatal("expected first put to assign an id")
	}

	// An equal value (1.0 == 1) dedupes onto the same entry.
	second, err := ts.client.Put(`Pair<Text, Number>`, `["a", 1.0]`)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Existing {
		t.Fatal("expected second put to find the existing entry")
	}
	if second.ID != first.ID {
		t.Fatalf("expected second put to return id %s; got %s", first.ID, second.ID)
	}
	if second.Code != first.Code {
		t.Fatalf("expected matching codes; got %d and %d", first.Code, second.Code)
	}

	// A different value gets its own entry.
	third, err := ts.client.Put(`Pair<Text, Number>`, `["b", 1]`)
	if err != nil {
		t.Fatal(err)
	}
	if third.Existing {
		t.Fatal("expected third put to insert")
	}
	if third.ID == first.ID {
		t.Fatal("expected third put to assign a fresh id")
	}

	lookup, err := ts.client.Lookup(`Pair<Text, Number>`, `["a", 1]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(lookup.Matches) != 1 || lookup.Matches[0] != first.ID {
		t.Fatalf("expected lookup to match [%s]; got %v", first.ID, lookup.Matches)
	}
	if lookup.Code != first.Code {
		t.Fatalf("expected lookup code %d; got %d", first.Code, lookup.Code)
	}

	missing, err := ts.client.Lookup(`Pair<Text, Number>`, `["c", 3]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(missing.Matches) != 0 {
		t.Fatalf("expected no matches; got %v", missing.Matches)
	}
}
