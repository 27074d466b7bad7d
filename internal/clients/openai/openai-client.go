package openai_client

import (
	"context"
	"errors"
	"fmt"

	"github.com/init-pkg/column-mapper/internal/config"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Client is a chat completion client for the external mapping adapter.
type Client struct {
	client openai.Client
	model  openai.ChatModel
}

func New(cfg *config.Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Clients.OpenAI.ApiKey),
		// The adapter treats a failed call as final.
		option.WithMaxRetries(0),
	}
	if cfg.Clients.OpenAI.BaseUrl != "" {
		opts = append(opts, option.WithBaseURL(cfg.Clients.OpenAI.BaseUrl))
	}

	model := openai.ChatModel(cfg.Clients.OpenAI.Model)
	if model == "" {
		model = openai.ChatModelGPT5Nano
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Complete sends one system + user message pair. The answer is expected to be
// a bare JSON array, which structured outputs cannot express, so no response
// format is requested.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	chat, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Seed:  openai.Int(42),
		Model: c.model,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return chat.Choices[0].Message.Content, nil
}
