package generators

type GeneratorArgs struct {
	BaseURL           string   `json:"base_url"`
	Model             string   `json:"model"`
	MaxGenerateTokens *int     `json:"max_generate_tokens"`
	Temperature       *float32 `json:"temperature"`
}

// GenerateOptions overrides generator arguments for a single call.
type GenerateOptions struct {
	Temperature *float32
}
