package prompts

import (
	"strings"
	"testing"

	"github.com/reusee/stratgen/games"
	"github.com/reusee/stratgen/vars"
)

func TestTaskPayoffs(t *testing.T) {
	game, err := games.Get("prisoners_dilemma")
	if err != nil {
		t.Fatal(err)
	}
	task := Task(game, 20, nil)
	for _, want := range []string{
		"| C | 3,3 | 0,5 |",
		"| D | 5,0 | 1,1 |",
		"you both score 3.",
		"you score 0 and they score 5.",
		"you score 5 and they score 0.",
		"you both score 1.",
		"Each match lasts 20 rounds.",
	} {
		if !strings.Contains(task, want) {
			t.Fatalf("missing %q in:\n%s", want, task)
		}
	}
	if strings.Contains(task, "noisy") {
		t.Fatalf("noise mentioned without noise: %s", task)
	}
}

func TestTaskNoise(t *testing.T) {
	game, err := games.Get("prisoners_dilemma")
	if err != nil {
		t.Fatal(err)
	}
	task := Task(game, 1000, vars.PtrTo(0.1))
	if !strings.Contains(task, "10% chance") {
		t.Fatalf("got:\n%s", task)
	}
	if !strings.Contains(task, "Each match lasts 1000 rounds.") {
		t.Fatalf("got:\n%s", task)
	}
}

func TestTaskIntegerPayoffsStayIntegers(t *testing.T) {
	game := games.Game{Name: "test", R: 3, P: 1, S: 0, T: 5}
	task := Task(game, 10, nil)
	if strings.Contains(task, "3.0") || strings.Contains(task, "5.0") {
		t.Fatalf("payoffs formatted as floats:\n%s", task)
	}
}

func TestFirstNext(t *testing.T) {
	if got := First("aggressive"); got != "First, write the aggressive strategy." {
		t.Fatalf("got %q", got)
	}
	if got := Next("neutral"); got != "Now, write the neutral strategy" {
		t.Fatalf("got %q", got)
	}
}

func TestAlgorithmMentionsSignature(t *testing.T) {
	algorithm := Algorithm("always cooperate", nil)
	if !strings.Contains(algorithm, "def strategy(self, opponent: axl.player.Player) -> axl.Action:") {
		t.Fatalf("got:\n%s", algorithm)
	}
	if !strings.Contains(algorithm, "always cooperate") {
		t.Fatalf("description missing:\n%s", algorithm)
	}
}
