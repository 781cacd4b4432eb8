package checks

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCheckAcceptsPlainStrategy(t *testing.T) {
	source := `def strategy(self, opponent):
  if not self.history:
    return axl.Action.C
  if opponent.history[-1] == axl.Action.D:
    return axl.Action.D
  return axl.Action.C`
	if err := Check(context.Background(), source); err != nil {
		t.Fatal(err)
	}
}

func TestCheckAcceptsComprehensionsAndCalls(t *testing.T) {
	source := `def strategy(self, opponent):
  recent = [a for a in opponent.history[-5:] if a == axl.Action.D]
  rate = len(recent) / max(1, len(opponent.history))
  total = sum(1 for a in self.history if a == axl.Action.C)
  if rate > 0.5 and total >= 3:
    return axl.Action.D
  return axl.Action.C`
	if err := Check(context.Background(), source); err != nil {
		t.Fatal(err)
	}
}

func TestCheckRejectsImport(t *testing.T) {
	source := `import os

def strategy(self, opponent):
  return axl.Action.C`
	assertUnsafe(t, source, "import")
}

func TestCheckRejectsNestedImport(t *testing.T) {
	// not at top level: the whole tree is walked
	source := `def strategy(self, opponent):
  import random
  return axl.Action.C`
	assertUnsafe(t, source, "import")
}

func TestCheckRejectsLambda(t *testing.T) {
	source := `def strategy(self, opponent):
  f = lambda x: x
  return f(axl.Action.C)`
	assertUnsafe(t, source, "lambda")
}

func TestCheckRejectsClass(t *testing.T) {
	source := `class Helper:
  pass`
	assertUnsafe(t, source, "class")
}

func TestCheckRejectsTry(t *testing.T) {
	source := `def strategy(self, opponent):
  try:
    return axl.Action.C
  except Exception:
    return axl.Action.D`
	assertUnsafe(t, source, "try")
}

func TestCheckRejectsWhile(t *testing.T) {
	source := `def strategy(self, opponent):
  while True:
    pass`
	assertUnsafe(t, source, "while")
}

func TestCheckRejectsWith(t *testing.T) {
	source := `def strategy(self, opponent):
  with open("f") as f:
    pass`
	assertUnsafe(t, source, "with")
}

func TestCheckRejectsDynamicExecutionCalls(t *testing.T) {
	for _, name := range []string{
		"eval", "exec", "compile", "__import__", "open", "getattr",
	} {
		source := `def strategy(self, opponent):
  ` + name + `("x")
  return axl.Action.C`
		var unsafe UnsafeNodeError
		err := Check(context.Background(), source)
		if !errors.As(err, &unsafe) {
			t.Fatalf("%s: got %v", name, err)
		}
		if !strings.Contains(unsafe.Kind, name) {
			t.Fatalf("%s: got kind %q", name, unsafe.Kind)
		}
	}
}

func TestCheckSyntaxError(t *testing.T) {
	source := `def strategy(self, opponent)
  return axl.Action.C`
	var syntaxErr SyntaxError
	err := Check(context.Background(), source)
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("got %v", err)
	}
	var unsafe UnsafeNodeError
	if errors.As(err, &unsafe) {
		t.Fatalf("syntax error reported as unsafe node: %v", err)
	}
}

func TestCheckEmptySource(t *testing.T) {
	if err := Check(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
}

func assertUnsafe(t *testing.T, source string, kindFragment string) {
	t.Helper()
	var unsafe UnsafeNodeError
	err := Check(context.Background(), source)
	if !errors.As(err, &unsafe) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(unsafe.Kind, kindFragment) {
		t.Fatalf("got kind %q, want fragment %q", unsafe.Kind, kindFragment)
	}
}
