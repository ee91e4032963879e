package analyzer

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client performs the single round trip to the vision model. It
// exists as an interface so pipeline tests can stub the network.
type Client interface {
	Ask(ctx context.Context, systemPrompt, userText string, png []byte) (string, error)
}

type openAIClient struct {
	api   *openai.Client
	model string
}

// NewClient builds a chat-completion client for the configured
// endpoint. The credential is assumed present; the pipeline rejects
// queries without one before constructing a request.
func NewClient(cfg Config) Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	return &openAIClient{
		api:   openai.NewClientWithConfig(clientConfig),
		model: cfg.Model,
	}
}

// Ask sends one system message and one user message carrying the
// screenshot as an inline data URI plus the text context, and returns
// the model's answer verbatim. One attempt only: model calls are too
// costly to retry blindly, so retry policy stays with the caller.
func (c *openAIClient) Ask(ctx context.Context, systemPrompt, userText string, png []byte) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)),
						},
					},
					{
						Type: openai.ChatMessagePartTypeText,
						Text: userText,
					},
				},
			},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrProtocol)
	}
	return resp.Choices[0].Message.Content, nil
}
