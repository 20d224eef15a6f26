package hashcode

import "testing"

func TestSeqStrategy(t *testing.T) {
	strategy := NewSeqStrategy(NewBoolStrategy())

	if !KeysEqual(strategy.Key(), NewSeqKey(Bool)) {
		t.Fatalf("expected key Seq<Bool>; got %s", strategy.Key().Key())
	}

	cases := []struct {
		in  []Value
		out Code
	}{
		{nil, 0},
		{[]Value{NewVBool(true)}, 73},                  // Mix(1, 0)
		{[]Value{NewVBool(false)}, 0},                  // Mix(0, 0)
		{[]Value{NewVBool(false), NewVBool(true)}, 3723}, // Mix(0, Mix(1, 0))
	}

	for idx, testCase := range cases {
		actual, err := strategy.Apply(NewVSeq(Bool, testCase.in))
		if err != nil {
			t.Errorf("case %d: %v", idx, err)
			continue
		}
		if actual != testCase.out {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.out, actual)
		}
	}
}

func TestOptionStrategy(t *testing.T) {
	strategy := NewOptionStrategy(NewBoolStrategy())

	cases := []struct {
		in  Value
		out Code
	}{
		{NewVNone(Bool), 0},
		{NewVSome(NewVBool(false)), 73}, // Mix(1, 0)
		{NewVSome(NewVBool(true)), 124}, // Mix(1, 1)
	}

	for idx, testCase := range cases {
		actual, err := strategy.Apply(testCase.in)
		if err != nil {
			t.Errorf("case %d: %v", idx, err)
			continue
		}
		if actual != testCase.out {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.out, actual)
		}
	}
}

func TestPairStrategy(t *testing.T) {
	strategy := NewPairStrategy(NewBoolStrategy(), NewBoolStrategy())

	cases := []struct {
		first  bool
		second bool
		out    Code
	}{
		{false, false, 0},
		{true, false, 73}, // Mix(1, 0)
		{false, true, 51}, // Mix(0, 1): pair order matters
		{true, true, 124},
	}

	for idx, testCase := range cases {
		actual, err := strategy.Apply(NewVPair(NewVBool(testCase.first), NewVBool(testCase.second)))
		if err != nil {
			t.Errorf("case %d: %v", idx, err)
			continue
		}
		if actual != testCase.out {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.out, actual)
		}
	}
}

func TestUnionStrategy(t *testing.T) {
	strategy := NewUnionStrategy(NewBoolStrategy(), NewBoolStrategy())

	cases := []struct {
		in  Value
		out Code
	}{
		{NewVLeft(NewVBool(false), Bool), 146},  // Mix(2, 0)
		{NewVLeft(NewVBool(true), Bool), 197},   // Mix(2, 1)
		{NewVRight(Bool, NewVBool(false)), 219}, // Mix(3, 0)
		{NewVRight(Bool, NewVBool(true)), 270},  // Mix(3, 1)
	}

	for idx, testCase := range cases {
		actual, err := strategy.Apply(testCase.in)
		if err != nil {
			t.Errorf("case %d: %v", idx, err)
			continue
		}
		if actual != testCase.out {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.out, actual)
		}
	}

	// The tags alone keep same-payload lefts and rights apart.
	left, _ := strategy.Apply(NewVLeft(NewVBool(true), Bool))
	right, _ := strategy.Apply(NewVRight(Bool, NewVBool(true)))
	if left == right {
		t.Errorf("expected left and right with equal payloads to differ; both %s", left)
	}
}

func TestCompositeWrongType(t *testing.T) {
	seq := NewSeqStrategy(NewBoolStrategy())

	// wrong container
	if _, err := seq.Apply(NewVBool(true)); err == nil {
		t.Error("expected error applying Seq<Bool> strategy to a Bool")
	}

	// right container, wrong element type: the element strategy catches it
	_, err := seq.Apply(NewVSeq(Text, []Value{NewVText("nope")}))
	if err == nil {
		t.Fatal("expected error hashing Seq<Text> value with Seq<Bool> strategy")
	}
	expected := "wrong value type: want Bool; got Text"
	if err.Error() != expected {
		t.Errorf(`expected error "%s"; got "%s"`, expected, err.Error())
	}
}
