// Package gemini adapts Google's Gemini API to the ai.Generator contract.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tradequote_backend/platform/ai"

	"google.golang.org/genai"
)

const (
	defaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.7
	defaultMaxTokens   = 800
)

// Config for the Gemini generator.
type Config struct {
	APIKey string
	Model  string
}

// Client implements ai.Generator with the genai SDK.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client. The API key is required.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, model: cfg.Model}, nil
}

// Name returns the configured model.
func (c *Client) Name() string {
	return c.model
}

// Generate runs a single GenerateContent call and returns the response text.
func (c *Client) Generate(ctx context.Context, req ai.Request) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)},
		buildConfig(req),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func buildConfig(req ai.Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](defaultTemperature),
		MaxOutputTokens: defaultMaxTokens,
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}
	return config
}

var _ ai.Generator = (*Client)(nil)
