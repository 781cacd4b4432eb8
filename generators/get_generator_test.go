package generators

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/configs"
	"github.com/reusee/stratgen/modes"
)

func testScope(t *testing.T, configSrc string) dscope.Scope {
	var paths []string
	if configSrc != "" {
		path := filepath.Join(t.TempDir(), "config.cue")
		if err := os.WriteFile(path, []byte(configSrc), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, "")
		},
	)
}

func TestGetGeneratorBuiltins(t *testing.T) {
	testScope(t, "").Call(func(
		getGenerator GetGenerator,
	) {
		generator, err := getGenerator("openai")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := generator.(*OpenAI); !ok {
			t.Fatalf("got %T", generator)
		}
		if generator.Args().BaseURL != "https://api.openai.com/v1" {
			t.Fatalf("got %v", generator.Args().BaseURL)
		}

		generator, err = getGenerator("anthropic")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := generator.(*Anthropic); !ok {
			t.Fatalf("got %T", generator)
		}
		if n := generator.Args().MaxGenerateTokens; n == nil || *n != 1000 {
			t.Fatalf("got %v", n)
		}
	})
}

func TestGetGeneratorOllamaPrefix(t *testing.T) {
	testScope(t, "").Call(func(
		getGenerator GetGenerator,
	) {
		generator, err := getGenerator("ollama:llama3")
		if err != nil {
			t.Fatal(err)
		}
		args := generator.Args()
		if args.Model != "llama3" {
			t.Fatalf("got %v", args.Model)
		}
		if !strings.Contains(args.BaseURL, "11434") {
			t.Fatalf("got %v", args.BaseURL)
		}
	})
}

func TestGetGeneratorUnknown(t *testing.T) {
	testScope(t, "").Call(func(
		getGenerator GetGenerator,
	) {
		_, err := getGenerator("no-such-model")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "invalid model") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestGetGeneratorFromConfig(t *testing.T) {
	testScope(t, `
generators: [
	{
		name: "fast"
		type: "openai"
		api_key: "test-key"
		base_url: "http://example.com/v1"
		model: "test-model"
	},
]
`).Call(func(
		getGenerator GetGenerator,
	) {
		generator, err := getGenerator("fast")
		if err != nil {
			t.Fatal(err)
		}
		args := generator.Args()
		if args.Model != "test-model" {
			t.Fatalf("got %v", args.Model)
		}
		if args.BaseURL != "http://example.com/v1" {
			t.Fatalf("got %v", args.BaseURL)
		}
	})
}
