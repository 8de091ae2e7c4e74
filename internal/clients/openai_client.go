package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	completionModel       = openai.ChatModelGPT4oMini
	completionTemperature = 0.2
)

type OpenAIClient struct {
	Client *openai.Client
}

// NewOpenAIClient disables the SDK's built-in retries; every analysis makes exactly
// one completion request. baseURL is optional.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHeader("User-Agent", USER_AGENT),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	slog.Info("[OpenAIClient] OpenAI client initialized",
		slog.String("model", string(completionModel)),
		slog.Bool("custom_base_url", baseURL != ""))

	return &OpenAIClient{
		Client: openai.NewClient(opts...),
	}
}

// Complete requests a single chat completion and returns the first choice's content.
func (o *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	start := time.Now()

	completion, err := o.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		}),
		Model:       openai.F(completionModel),
		Temperature: openai.Float(completionTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	slog.Debug("[OpenAIClient] Completion received",
		slog.String("finish_reason", string(completion.Choices[0].FinishReason)),
		slog.Duration("elapsed", time.Since(start)))

	return completion.Choices[0].Message.Content, nil
}
