package hashcode

import "testing"

func TestMix(t *testing.T) {
	// Expected values computed as (73*h1 + 51*h2) mod 65536 with wide
	// arithmetic; don't "fix" them by hand.
	cases := []struct {
		h1  Code
		h2  Code
		out Code
	}{
		{0, 0, 0},
		{1, 1, 124},
		{1, 0, 73},
		{0, 1, 51},
		{65535, 0, 65463},
		{0, 65535, 65485},
		{65535, 65535, 65412},
		{256, 256, 31744},
	}

	for idx, testCase := range cases {
		actual := Mix(testCase.h1, testCase.h2)
		if actual != testCase.out {
			t.Errorf("case %d: expected %s; got %s", idx, testCase.out, actual)
		}
	}
}

func TestMixNotCommutative(t *testing.T) {
	if Mix(1, 0) == Mix(0, 1) {
		t.Errorf("expected Mix(1, 0) != Mix(0, 1); both %s", Mix(1, 0))
	}
}

func TestMixDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if Mix(12345, 54321) != Mix(12345, 54321) {
			t.Fatal("Mix not deterministic")
		}
	}
}
