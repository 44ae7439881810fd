// Package groq implements the diary reflector port against Groq's
// OpenAI-compatible chat completion API.
package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
	"github.com/ewilliams-labs/lumiya/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama3-8b-8192"

	serviceName = "Groq"
)

// Config configures the Groq client.
type Config struct {
	APIKey     string
	BaseURL    string       // defaults to DefaultBaseURL
	Model      string       // defaults to DefaultModel
	HTTPClient *http.Client // defaults to http.DefaultClient
}

// Client sends diary entries to a hosted chat completion model.
type Client struct {
	api   openaigo.Client
	model string
}

// compile-time interface assertion
var _ ports.DiaryReflector = (*Client)(nil)

// NewClient builds a client. Retries are disabled; a failed call is reported once.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	api := openaigo.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)

	return &Client{api: api, model: model}
}

// Reflect returns the model's reply to content. Empty content is rejected
// before any request is made.
func (c *Client) Reflect(ctx context.Context, content string) (string, error) {
	if err := domain.ValidateDiaryContent(content); err != nil {
		return "", err
	}

	resp, err := c.api.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(domain.CounselorPrompt),
			openaigo.UserMessage(content),
		},
	})
	if err != nil {
		upstream := &domain.UpstreamError{Service: serviceName, Err: err}
		var apiErr *openaigo.Error
		if errors.As(err, &apiErr) {
			upstream.StatusCode = apiErr.StatusCode
		}
		logrus.WithError(err).WithField("model", c.model).Error("groq: chat completion failed")
		return "", upstream
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("empty choices")}
	}

	return resp.Choices[0].Message.Content, nil
}
