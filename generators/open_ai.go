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

type OpenAI struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Logger dscope.Inject[logs.Logger]
}

var _ Generator = new(OpenAI)

type NewOpenAI func(args GeneratorArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAI {
	return func(args GeneratorArgs, apiKey string) *OpenAI {
		ret := &OpenAI{
			args:   args,
			client: client,
			apiKey: apiKey,
		}
		inject(&ret)
		return ret
	}
}

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

func (o *OpenAI) Generate(ctx context.Context, state State, options *GenerateOptions) (ret State, err error) {
	ret = state

	messages, err := stateToOpenAIMessages(ret)
	if err != nil {
		return nil, err
	}

	temperature := o.args.Temperature
	if options != nil && options.Temperature != nil {
		temperature = options.Temperature
	}

	o.Logger().InfoContext(ctx, "generating",
		"model", o.args.Model,
	)

	req := ChatCompletionRequest{
		Model:               o.args.Model,
		Messages:            messages,
		MaxCompletionTokens: vars.DerefOrZero(o.args.MaxGenerateTokens),
		Temperature:         temperature,
	}

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.args.BaseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return ret, RequestError{
			Provider: "openai",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return ret, RequestError{
				Provider: "openai",
				Err:      fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body)),
			}
		}
		return ret, RequestError{
			Provider: "openai",
			Err:      errResp.Error,
		}
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return ret, fmt.Errorf("error unmarshalling response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return ret, RequestError{
			Provider: "openai",
			Err:      fmt.Errorf("no choices in response"),
		}
	}
	choice := completion.Choices[0]

	if choice.Message.Content != "" {
		if ret, err = ret.AppendContent(&Content{
			Role: RoleModel,
			Parts: []Part{
				Text(choice.Message.Content),
			},
		}); err != nil {
			return ret, err
		}
	}

	var usage Usage
	usage.Prompt.TokenCount = completion.Usage.PromptTokens
	usage.Candidates.TokenCount = completion.Usage.CompletionTokens
	if ret, err = ret.AppendContent(&Content{
		Role: RoleLog,
		Parts: []Part{
			usage,
			FinishReason(choice.FinishReason),
		},
	}); err != nil {
		return ret, err
	}

	if ret, err = ret.Flush(); err != nil {
		return ret, err
	}

	return ret, nil
}

func stateToOpenAIMessages(state State) (messages []ChatCompletionMessage, err error) {
	if state.SystemPrompt() != "" {
		messages = append(messages, ChatCompletionMessage{
			Role:    string(RoleSystem),
			Content: state.SystemPrompt(),
		})
	}

	for _, content := range state.Contents() {
		if content.Role == RoleLog {
			continue
		}

		role := string(content.Role)
		if role == string(RoleModel) {
			// convert to open ai role
			role = string(RoleAssistant)
		}

		text := TextOf(content)
		if text == "" {
			continue
		}

		if len(messages) > 0 && messages[len(messages)-1].Role == role {
			messages[len(messages)-1].Content += text
			continue
		}
		messages = append(messages, ChatCompletionMessage{
			Role:    role,
			Content: text,
		})
	}

	return messages, nil
}
