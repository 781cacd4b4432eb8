package generators

import (
	"os"

	"github.com/reusee/stratgen/configs"
	"github.com/reusee/stratgen/vars"
)

type (
	OpenAIAPIKey    string
	AnthropicAPIKey string
)

func (Module) OpenAIAPIKey(
	loader configs.Loader,
) OpenAIAPIKey {
	return vars.FirstNonZero(
		configs.First[OpenAIAPIKey](loader, "openai_api_key"),
		configs.First[OpenAIAPIKey](loader, "open_ai_api_key"),
		OpenAIAPIKey(os.Getenv("OPENAI_API_KEY")),
	)
}

func (Module) AnthropicAPIKey(
	loader configs.Loader,
) AnthropicAPIKey {
	return vars.FirstNonZero(
		configs.First[AnthropicAPIKey](loader, "anthropic_api_key"),
		AnthropicAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
}
