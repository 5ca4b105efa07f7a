package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/apex/log"
	openai "github.com/sashabaranov/go-openai"

	"medscribe-backend/config"
)

// Sentinel errors mapped onto HTTP status at the handler boundary. Backend
// detail (status, body) is logged here and never carried to the caller.
var (
	ErrMissingAPIKey      = errors.New("openai: OPENAI_API_KEY não configurada")
	ErrBackendUnavailable = errors.New("openai: falha ao chamar a API")
	ErrEmptyCompletion    = errors.New("openai: resposta sem conteúdo")
)

// Options bound the sampling behavior of a single completion call.
type Options struct {
	Temperature float32
	MaxTokens   int
}

type Client struct {
	api    *openai.Client
	apiKey string
	Model  string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		api:    openai.NewClient(cfg.OpenAIAPIKey),
		apiKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	}
}

// Complete sends one system+user prompt pair and returns the raw completion
// text. A single attempt is made: no retry loop, no internal timeout. The
// caller's context is the only bound on the round trip.
func (c *Client) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			log.Errorf("openai: erro da API status=%d tipo=%s msg=%s", apiErr.HTTPStatusCode, apiErr.Type, apiErr.Message)
		} else {
			log.Errorf("openai: erro de transporte: %v", err)
		}
		return "", ErrBackendUnavailable
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
