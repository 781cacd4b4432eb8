package outputs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/checks"
	"github.com/reusee/stratgen/configs"
	"github.com/reusee/stratgen/games"
	"github.com/reusee/stratgen/generators"
	"github.com/reusee/stratgen/modes"
	"github.com/reusee/stratgen/strategies"
)

// scriptedGenerator plays the provider: description requests get a per-
// attitude description, implementation requests get a fixed algorithm.
type scriptedGenerator struct {
	algorithm string
	calls     int
}

var _ generators.Generator = new(scriptedGenerator)

func (s *scriptedGenerator) Args() generators.GeneratorArgs {
	return generators.GeneratorArgs{
		Model: "scripted",
	}
}

func (s *scriptedGenerator) Generate(ctx context.Context, state generators.State, options *generators.GenerateOptions) (generators.State, error) {
	s.calls++
	request := generators.LastText(state)
	var response string
	if strings.Contains(request, "Implement the following strategy description") {
		response = s.algorithm
	} else {
		for _, attitude := range strategies.All() {
			if strings.Contains(request, "write the "+attitude.Lower()+" strategy") {
				response = "a " + attitude.Lower() + " strategy"
				break
			}
		}
	}
	if response == "" {
		return nil, errors.New("unexpected request: " + request)
	}
	return state.AppendContent(&generators.Content{
		Role:  generators.RoleModel,
		Parts: []generators.Part{generators.Text(response)},
	})
}

const scriptedAlgorithm = "```python\ndef strategy(self, opponent):\n  if not self.history:\n    return axl.Action.C\n  return opponent.history[-1]\n```"

func pipelineScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(strategies.Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	)
}

func runIndices(t *testing.T, artifact *Artifact, generator generators.Generator, indices []int) error {
	t.Helper()
	var runErr error
	pipelineScope(t).Call(func(
		generateBatch strategies.GenerateBatch,
	) {
		game, err := games.Get("prisoners_dilemma")
		if err != nil {
			t.Fatal(err)
		}
		if err := artifact.OpenAppend(); err != nil {
			t.Fatal(err)
		}
		defer artifact.Close()

		for _, n := range indices {
			units, err := generateBatch(context.Background(), generator, strategies.Batch{
				Index:  n,
				Game:   game,
				Rounds: 20,
			})
			if err != nil {
				runErr = err
				return
			}
			for _, unit := range units {
				if err := artifact.AppendUnit(unit); err != nil {
					t.Fatal(err)
				}
			}
			if err := artifact.Sync(); err != nil {
				t.Fatal(err)
			}
		}
	})
	return runErr
}

func readArtifact(t *testing.T, artifact *Artifact) string {
	t.Helper()
	content, err := os.ReadFile(artifact.Path())
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func TestPipelineFreshRun(t *testing.T) {
	artifact := NewArtifact(filepath.Join(t.TempDir(), "output.py"))
	if err := artifact.Init(); err != nil {
		t.Fatal(err)
	}

	generator := &scriptedGenerator{
		algorithm: scriptedAlgorithm,
	}
	remaining := Remaining(nil, 1)
	if err := runIndices(t, artifact, generator, remaining); err != nil {
		t.Fatal(err)
	}

	content := readArtifact(t, artifact)
	if !strings.HasPrefix(content, Preamble) {
		t.Fatalf("got:\n%s", content)
	}
	for _, attitude := range strategies.All() {
		decl := "class " + string(attitude) + "_1(LLM_Strategy):"
		if strings.Count(content, decl) != 1 {
			t.Fatalf("missing %q in:\n%s", decl, content)
		}
	}
	if got := strings.Count(content, "class "); got != 3 {
		t.Fatalf("got %d classes", got)
	}

	done, err := artifact.DoneIndices()
	if err != nil {
		t.Fatal(err)
	}
	if len(done) != 1 || !done[1] {
		t.Fatalf("got %v", done)
	}
}

func TestPipelineUnsafeAborts(t *testing.T) {
	artifact := NewArtifact(filepath.Join(t.TempDir(), "output.py"))
	if err := artifact.Init(); err != nil {
		t.Fatal(err)
	}

	generator := &scriptedGenerator{
		algorithm: "```python\nimport socket\n\ndef strategy(self, opponent):\n  return axl.Action.C\n```",
	}
	err := runIndices(t, artifact, generator, Remaining(nil, 1))
	var unsafe checks.UnsafeNodeError
	if !errors.As(err, &unsafe) {
		t.Fatalf("got %v", err)
	}

	content := readArtifact(t, artifact)
	if strings.Contains(content, "class ") {
		t.Fatalf("unit persisted for aborted index:\n%s", content)
	}
}

func TestPipelineResume(t *testing.T) {
	artifact := NewArtifact(filepath.Join(t.TempDir(), "output.py"))
	if err := artifact.Init(); err != nil {
		t.Fatal(err)
	}

	// first run completes index 1
	generator := &scriptedGenerator{
		algorithm: scriptedAlgorithm,
	}
	if err := runIndices(t, artifact, generator, Remaining(nil, 1)); err != nil {
		t.Fatal(err)
	}
	firstRunCalls := generator.calls
	// 3 description turns plus 3 implementation turns
	if firstRunCalls != 6 {
		t.Fatalf("got %d calls", firstRunCalls)
	}

	// resume with target 2: only index 2 is generated
	done, err := artifact.DoneIndices()
	if err != nil {
		t.Fatal(err)
	}
	remaining := Remaining(done, 2)
	if len(remaining) != 1 || remaining[0] != 2 {
		t.Fatalf("got %v", remaining)
	}
	if err := runIndices(t, artifact, generator, remaining); err != nil {
		t.Fatal(err)
	}
	if generator.calls != 2*firstRunCalls {
		t.Fatalf("resume issued %d calls, first run %d", generator.calls-firstRunCalls, firstRunCalls)
	}

	content := readArtifact(t, artifact)
	if strings.Count(content, "class Neutral_1(") != 1 ||
		strings.Count(content, "class Neutral_2(") != 1 {
		t.Fatalf("got:\n%s", content)
	}
}
