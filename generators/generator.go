package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/stratgen/vars"
)

const K = 1024

type Generator interface {
	Args() GeneratorArgs
	Generate(ctx context.Context, state State, options *GenerateOptions) (State, error)
}

type GetGenerator func(name string) (Generator, error)

func (Module) GetGenerator(
	newOpenAI NewOpenAI,
	newAnthropic NewAnthropic,
	getSpecs GetGeneratorSpecs,
	openAIKey OpenAIAPIKey,
	anthropicKey AnthropicAPIKey,
) GetGenerator {
	return func(name string) (Generator, error) {

		// user-defined first
		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			switch strings.ToLower(spec.Type) {
			case "openai", "open-ai", "open_ai":
				return newOpenAI(spec.GeneratorArgs, spec.APIKey), nil
			case "anthropic":
				return newAnthropic(spec.GeneratorArgs, spec.APIKey), nil
			case "ollama":
				spec.GeneratorArgs.BaseURL = "http://127.0.0.1:11434/v1"
				return newOpenAI(spec.GeneratorArgs, ""), nil
			default:
				return nil, fmt.Errorf("unknown generator type: %q", spec.Type)
			}
		}

		// ollama
		provider, modelName, ok := strings.Cut(name, ":")
		if ok && provider == "ollama" {
			return newOpenAI(GeneratorArgs{
				BaseURL: "http://127.0.0.1:11434/v1",
				Model:   modelName,
			}, ""), nil
		}

		// built-ins
		switch name {

		case "openai":
			return newOpenAI(GeneratorArgs{
				BaseURL:           "https://api.openai.com/v1",
				Model:             "chatgpt-4o-latest",
				MaxGenerateTokens: vars.PtrTo(4 * K),
			}, string(openAIKey)), nil

		case "anthropic":
			return newAnthropic(GeneratorArgs{
				BaseURL:           "https://api.anthropic.com",
				Model:             "claude-3-5-sonnet-20240620",
				MaxGenerateTokens: vars.PtrTo(1000),
			}, string(anthropicKey)), nil

		}

		return nil, fmt.Errorf("invalid model: %s", name)
	}
}
