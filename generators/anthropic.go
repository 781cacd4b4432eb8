package generators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/logs"
	"github.com/reusee/stratgen/nets"
	"github.com/reusee/stratgen/vars"
)

const anthropicVersion = "2023-06-01"

// defaultAnthropicMaxTokens bounds generation when the args leave it unset:
// the messages API requires max_tokens on every request.
const defaultAnthropicMaxTokens = 1000

type Anthropic struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Logger dscope.Inject[logs.Logger]
}

var _ Generator = new(Anthropic)

type NewAnthropic func(args GeneratorArgs, apiKey string) *Anthropic

func (Module) NewAnthropic(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewAnthropic {
	return func(args GeneratorArgs, apiKey string) *Anthropic {
		ret := &Anthropic{
			args:   args,
			client: client,
			apiKey: apiKey,
		}
		inject(&ret)
		return ret
	}
}

func (a *Anthropic) Args() GeneratorArgs {
	return a.args
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature *float32           `json:"temperature,omitempty"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type anthropicErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *Anthropic) Generate(ctx context.Context, state State, options *GenerateOptions) (ret State, err error) {
	ret = state

	messages, err := stateToAnthropicMessages(ret)
	if err != nil {
		return nil, err
	}

	temperature := a.args.Temperature
	if options != nil && options.Temperature != nil {
		temperature = options.Temperature
	}

	maxTokens := vars.DerefOrZero(a.args.MaxGenerateTokens)
	if maxTokens == 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	a.Logger().InfoContext(ctx, "generating",
		"model", a.args.Model,
	)

	req := anthropicRequest{
		Model:       a.args.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      state.SystemPrompt(),
		Messages:    messages,
	}

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", a.args.BaseURL+"/v1/messages", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return ret, RequestError{
			Provider: "anthropic",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp anthropicErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
			return ret, RequestError{
				Provider: "anthropic",
				Err:      fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body)),
			}
		}
		return ret, RequestError{
			Provider: "anthropic",
			Err:      fmt.Errorf("%s: %s", errResp.Error.Type, errResp.Error.Message),
		}
	}

	var message anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		return ret, fmt.Errorf("error unmarshalling response: %w", err)
	}

	for _, block := range message.Content {
		if block.Type != "text" || block.Text == "" {
			continue
		}
		if ret, err = ret.AppendContent(&Content{
			Role: RoleModel,
			Parts: []Part{
				Text(block.Text),
			},
		}); err != nil {
			return ret, err
		}
	}

	var usage Usage
	usage.Prompt.TokenCount = message.Usage.InputTokens
	usage.Candidates.TokenCount = message.Usage.OutputTokens
	if ret, err = ret.AppendContent(&Content{
		Role: RoleLog,
		Parts: []Part{
			usage,
			FinishReason(message.StopReason),
		},
	}); err != nil {
		return ret, err
	}

	if ret, err = ret.Flush(); err != nil {
		return ret, err
	}

	return ret, nil
}

// stateToAnthropicMessages flattens the state into alternating user and
// assistant messages. The system prompt travels in its own request field.
func stateToAnthropicMessages(state State) (messages []anthropicMessage, err error) {
	for _, content := range state.Contents() {
		switch content.Role {
		case RoleLog, RoleSystem:
			continue
		}

		role := "user"
		if content.Role == RoleModel || content.Role == RoleAssistant {
			role = "assistant"
		}

		text := TextOf(content)
		if text == "" {
			continue
		}

		if len(messages) > 0 && messages[len(messages)-1].Role == role {
			messages[len(messages)-1].Content += text
			continue
		}
		messages = append(messages, anthropicMessage{
			Role:    role,
			Content: text,
		})
	}

	return messages, nil
}
