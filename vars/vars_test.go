package vars

import "testing"

func TestPtrTo(t *testing.T) {
	p := PtrTo(42)
	if p == nil || *p != 42 {
		t.Fatalf("got %v", p)
	}
}

func TestDerefOrZero(t *testing.T) {
	if got := DerefOrZero[int](nil); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := DerefOrZero(PtrTo(7)); got != 7 {
		t.Fatalf("got %v", got)
	}
}

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "a", "b"); got != "a" {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "t", "YES", "y"} {
		if !StrToBool(s) {
			t.Fatalf("got false for %q", s)
		}
	}
	for _, s := range []string{"false", "f", "no", "n", ""} {
		if StrToBool(s) {
			t.Fatalf("got true for %q", s)
		}
	}
}
