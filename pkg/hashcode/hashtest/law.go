package hashtest

import (
	"testing"

	"github.com/vilterp/structhash/pkg/hashcode"
)

// CheckLaw resolves the strategy for a type and checks, over `rounds`
// generated pairs, that equal values hash equal and that hashing is
// deterministic. (The range invariant holds by Code's width; the core
// tests assert it on Mix directly.)
func CheckLaw(t *testing.T, reg *hashcode.Registry, key hashcode.TypeKey, rounds int) {
	strategy, err := reg.Resolve(key)
	if err != nil {
		t.Fatalf("%s: resolve: %v", key.Key(), err)
	}

	g := NewGen(int64(len(key.Key())) + 1)
	for round := 0; round < rounds; round++ {
		a, b := g.EqualPair(key)
		if !a.Equal(b) {
			t.Fatalf("%s: generator produced an unequal pair", key.Key())
		}

		codeA, err := strategy.Apply(a)
		if err != nil {
			t.Fatalf("%s: apply: %v", key.Key(), err)
		}
		codeB, err := strategy.Apply(b)
		if err != nil {
			t.Fatalf("%s: apply: %v", key.Key(), err)
		}
		if codeA != codeB {
			rendered, _ := hashcode.EncodeJSON(a)
			t.Fatalf(
				"%s: equal values hashed apart: %s: %s vs %s",
				key.Key(), rendered, codeA, codeB,
			)
		}

		again, err := strategy.Apply(a)
		if err != nil {
			t.Fatalf("%s: apply: %v", key.Key(), err)
		}
		if again != codeA {
			t.Fatalf("%s: hash not deterministic: %s then %s", key.Key(), codeA, again)
		}
	}
}
