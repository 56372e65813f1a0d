// Package llm adapts the Anthropic Messages API to the librarian Completer.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/library-backend/internal/config"
)

// ErrDisabled is returned by Disabled.Complete.
var ErrDisabled = errors.New("assistant disabled")

// Client sends single-turn prompts to Claude.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// New creates a Client from the assistant configuration. Extra options are
// applied after the configured ones.
func New(cfg config.AssistantConfig, opts ...option.RequestOption) *Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	return &Client{
		client:    anthropic.NewClient(reqOpts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// Complete returns the concatenated text blocks of the model's reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty completion (stop reason %q)", msg.StopReason)
	}
	return sb.String(), nil
}

// Disabled is the Completer used when the assistant is switched off.
type Disabled struct{}

// Complete always fails with ErrDisabled.
func (Disabled) Complete(context.Context, string) (string, error) {
	return "", ErrDisabled
}
