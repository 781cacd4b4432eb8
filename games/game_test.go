package games

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	game, err := Get("prisoners_dilemma")
	if err != nil {
		t.Fatal(err)
	}
	r, p, s, tt := game.RPST()
	if r != 3 || p != 1 || s != 0 || tt != 5 {
		t.Fatalf("got %v %v %v %v", r, p, s, tt)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	game, err := Get("Stag_Hunt")
	if err != nil {
		t.Fatal(err)
	}
	if game.Name != "stag_hunt" {
		t.Fatalf("got %v", game.Name)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("rock_paper_scissors")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "chicken") {
		t.Fatalf("error should list known games: %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 3 {
		t.Fatalf("got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("not sorted: %v", names)
		}
	}
}
