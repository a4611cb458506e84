// Package llm formats commit messages through an OpenAI-compatible
// chat-completion API. OpenRouter is the default endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/seoyeonmun/commit-formatter/internal/prompt"
)

const (
	// DefaultBaseURL targets OpenRouter's OpenAI-compatible API.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is used when no model is configured.
	DefaultModel = "meta-llama/llama-3-8b-instruct"

	requestTimeout = 30 * time.Second
	temperature    = 0.3
	maxTokens      = 500

	// OpenRouter attribution headers.
	refererURL = "https://github.com/seoyeonmun/commit-formatter"
	appTitle   = "Commit Message Formatter"
)

// ErrEmptyResponse indicates the API answered but returned no usable text.
var ErrEmptyResponse = errors.New("completion API returned no usable content")

// RequestError indicates the completion API reported a non-success status.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("completion API request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("completion API request failed with status %d", e.StatusCode)
}

// Request describes a single formatting call.
type Request struct {
	Message      string
	Model        string
	Language     string
	CustomPrompt string
}

// chatCompleter is the slice of the OpenAI client the formatter uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client issues one chat-completion call per Format invocation. No retries,
// no caching.
type Client struct {
	api          chatCompleter
	systemPrompt string
}

// Options configures a Client.
type Options struct {
	APIKey   string
	BaseURL  string
	Template string // optional system prompt template file
}

func NewClient(opts Options) (*Client, error) {
	system, err := prompt.System(opts.Template)
	if err != nil {
		return nil, err
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.BaseURL = DefaultBaseURL
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.HTTPClient = &http.Client{
		Transport: attributionTransport{base: http.DefaultTransport},
	}

	return &Client{
		api:          openai.NewClientWithConfig(cfg),
		systemPrompt: system,
	}, nil
}

// Format sends the message to the model and returns the reformatted text.
func (c *Client) Format(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User(req.Message, req.Language, req.CustomPrompt)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &RequestError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &RequestError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
		}
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// attributionTransport adds OpenRouter's attribution headers to every
// outbound request.
type attributionTransport struct {
	base http.RoundTripper
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("HTTP-Referer", refererURL)
	clone.Header.Set("X-Title", appTitle)
	return t.base.RoundTrip(clone)
}
