package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	asistente_errors "github.com/Dianapq/Back-Asistente/pkg/errors"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient calls an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client     *openai.Client
	opts       Options
	timeout    time.Duration
	retries    int
	configured bool
}

// NewOpenAIClient builds the provider client once at startup.
// An empty apiKey leaves the client unconfigured: every call then fails
// immediately without touching the network.
func NewOpenAIClient(apiKey, baseURL string, opts Options, timeout time.Duration, retries int) *OpenAIClient {
	c := &OpenAIClient{
		opts:       opts,
		timeout:    timeout,
		retries:    retries,
		configured: apiKey != "",
	}
	if !c.configured {
		return c
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	c.client = openai.NewClientWithConfig(config)
	return c
}

func (c *OpenAIClient) Configured() bool {
	return c.configured
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.configured {
		return "", asistente_errors.ErrNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		resp, err := c.call(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("%w: empty response from provider", asistente_errors.ErrUpstream)
			}
			return resp.Choices[0].Message.Content, nil
		}

		lastErr = err
		if !isTransient(err) || ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("%w: %s", asistente_errors.ErrUpstream, lastErr.Error())
}

func (c *OpenAIClient) call(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.client.CreateChatCompletion(ctx, req)
}

// isTransient reports whether a call is worth retrying. The provider
// answered with a definitive error (bad key, quota, bad request) when the
// error carries an API status; anything else is a transport failure.
func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode >= 500
	}
	return true
}
