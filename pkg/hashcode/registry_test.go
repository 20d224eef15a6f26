package hashcode

import (
	"sync"
	"testing"

	"github.com/vilterp/structhash/pkg/util"
)

func TestRegister(t *testing.T) {
	userID, err := NewPrimKey("UserID")
	if err != nil {
		t.Fatal(err)
	}
	userIDStrategy := NewStrategy(userID, func(v Value) (Code, error) {
		return 0, nil
	})

	reg := NewStandardRegistry()
	cases := []struct {
		key      TypeKey
		strategy *Strategy
		err      string
	}{
		{userID, userIDStrategy, ""},
		// at most one strategy per key
		{userID, userIDStrategy, "strategy already registered for type key UserID"},
		{Text, NewTextStrategy(), "strategy already registered for type key Text"},
		{NewSeqKey(Text), NewSeqStrategy(NewTextStrategy()), "invalid type key Seq<Text>: only primitive keys can be registered"},
		{nil, userIDStrategy, "invalid type key: nil type key"},
		{userID, nil, "invalid type key UserID: nil strategy"},
		{userID, NewBoolStrategy(), "invalid type key UserID: strategy is tagged Bool"},
	}

	for idx, testCase := range cases {
		err := reg.Register(testCase.key, testCase.strategy)
		util.AssertError(t, idx, testCase.err, err)
	}
}

func TestResolve(t *testing.T) {
	reg := NewStandardRegistry()
	missing, err := NewPrimKey("Missing")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		key TypeKey
		err string
	}{
		{Text, ""},
		{Number, ""},
		{Bool, ""},
		{NewSeqKey(Bool), ""},
		{NewOptionKey(NewSeqKey(Text)), ""},
		{NewPairKey(Text, Number), ""},
		{NewUnionKey(NewSeqKey(Text), NewOptionKey(Bool)), ""},
		{missing, "no strategy registered for type key Missing"},
		// unknown element types surface from any depth
		{NewSeqKey(missing), "no strategy registered for type key Missing"},
		{NewPairKey(Text, NewOptionKey(missing)), "no strategy registered for type key Missing"},
		{nil, "invalid type key: nil type key"},
		{NewSeqKey(nil), "invalid type key: nil type key"},
	}

	for idx, testCase := range cases {
		strategy, err := reg.Resolve(testCase.key)
		if util.AssertError(t, idx, testCase.err, err) {
			continue
		}
		if !KeysEqual(strategy.Key(), testCase.key) {
			t.Errorf("case %d: resolved strategy tagged %s", idx, strategy.Key().Key())
		}
	}
}

// register-and-retry is the documented recovery for UnknownType
func TestResolveAfterRegister(t *testing.T) {
	reg := NewStandardRegistry()
	userID, err := NewPrimKey("UserID")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := reg.Resolve(NewSeqKey(userID)); err == nil {
		t.Fatal("expected resolve to fail before registration")
	}

	strategy := NewStrategy(userID, func(v Value) (Code, error) {
		return 7, nil
	})
	if err := reg.Register(userID, strategy); err != nil {
		t.Fatal(err)
	}

	if _, err := reg.Resolve(NewSeqKey(userID)); err != nil {
		t.Fatalf("expected resolve to succeed after registration; got %v", err)
	}
}

func TestResolveCachesComposites(t *testing.T) {
	reg := NewStandardRegistry()
	key := NewPairKey(NewSeqKey(Text), NewOptionKey(Bool))

	first, err := reg.Resolve(key)
	if err != nil {
		t.Fatal(err)
	}
	second, err := reg.Resolve(key)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected cached strategy instance on second resolve")
	}
	if reg.CacheHits() == 0 {
		t.Error("expected a cache hit to be recorded")
	}
	if reg.NumCachedComposites() == 0 {
		t.Error("expected cached composites to be counted")
	}
}

// Resolves after the registration phase are safe from any number of
// goroutines.
func TestResolveConcurrent(t *testing.T) {
	reg := NewStandardRegistry()
	key := NewSeqKey(NewPairKey(Text, Number))
	val := NewVSeq(
		NewPairKey(Text, Number),
		[]Value{NewVPair(NewVText("a"), NewVNumber(1))},
	)

	expected, err := reg.Resolve(key)
	if err != nil {
		t.Fatal(err)
	}
	expectedCode, err := expected.Apply(val)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			strategy, err := reg.Resolve(key)
			if err != nil {
				t.Errorf("resolve: %v", err)
				return
			}
			code, err := strategy.Apply(val)
			if err != nil {
				t.Errorf("apply: %v", err)
				return
			}
			if code != expectedCode {
				t.Errorf("expected %s; got %s", expectedCode, code)
			}
		}()
	}
	wg.Wait()
}
