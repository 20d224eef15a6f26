package hashcode

import (
	"math"
	"testing"
)

func TestTextStrategy(t *testing.T) {
	strategy := NewTextStrategy()

	// h("") = 0; h(s) = Mix(h(tail), code unit). Codes computed from
	// that recurrence, not by hand.
	cases := []struct {
		in  string
		out Code
	}{
		{"", 0},
		{"a", 4947},  // Mix(0, 97)
		{"b", 4998},  // Mix(0, 98)
		{"ab", 42121}, // Mix(Mix(0, 98), 97)
		{"ba", 38449}, // order matters
		{"0", 2448},
	}

	for idx, testCase := range cases {
		actual, err := strategy.Apply(NewVText(testCase.in))
		if err != nil {
			t.Errorf("case %d: %v", idx, err)
			continue
		}
		if actual != testCase.out {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.out, actual)
		}
	}
}

func TestNumberStrategy(t *testing.T) {
	strategy := NewNumberStrategy()
	textStrategy := NewTextStrategy()

	// The number strategy is the text strategy over the canonical
	// decimal form.
	cases := []struct {
		in        float64
		canonical string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{1.5, "1.5"},
		{-2, "-2"},
		{1e21, "1e+21"},
		{-1e-7, "-1e-07"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}

	for idx, testCase := range cases {
		actual, err := strategy.Apply(NewVNumber(testCase.in))
		if err != nil {
			t.Errorf("case %d: %v", idx, err)
			continue
		}
		expected, err := textStrategy.Apply(NewVText(testCase.canonical))
		if err != nil {
			t.Errorf("case %d: %v", idx, err)
			continue
		}
		if actual != expected {
			t.Errorf(
				"case %d: expected hash of %q = %s; got %s",
				idx, testCase.canonical, expected, actual,
			)
		}
	}
}

func TestBoolStrategy(t *testing.T) {
	strategy := NewBoolStrategy()

	falseCode, err := strategy.Apply(NewVBool(false))
	if err != nil {
		t.Fatal(err)
	}
	if falseCode != 0 {
		t.Errorf("expected hash(false) = 0; got %s", falseCode)
	}

	trueCode, err := strategy.Apply(NewVBool(true))
	if err != nil {
		t.Fatal(err)
	}
	if trueCode != 1 {
		t.Errorf("expected hash(true) = 1; got %s", trueCode)
	}
}

func TestApplyWrongType(t *testing.T) {
	cases := []struct {
		strategy *Strategy
		val      Value
		err      string
	}{
		{NewTextStrategy(), NewVBool(true), "wrong value type: want Text; got Bool"},
		{NewNumberStrategy(), NewVText("5"), "wrong value type: want Number; got Text"},
		{NewBoolStrategy(), NewVNumber(1), "wrong value type: want Bool; got Number"},
	}

	for idx, testCase := range cases {
		_, err := testCase.strategy.Apply(testCase.val)
		if err == nil {
			t.Errorf("case %d: expected error; got success", idx)
			continue
		}
		if err.Error() != testCase.err {
			t.Errorf(`case %d: expected error "%s"; got "%s"`, idx, testCase.err, err.Error())
		}
	}
}
