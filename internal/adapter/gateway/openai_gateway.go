package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"examgen/internal/domain"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/oauth2"
)

// Config is everything a gateway needs. It is passed in explicitly so no
// adapter reads process state.
type Config struct {
	Endpoint    string
	Credential  string
	TimeoutMs   int
	ModelName   string
	Temperature float32
	// OpenRouter attribution headers. Empty values are not sent.
	Referer string
	Title   string
}

func (c Config) timeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// OpenAIGateway talks to any OpenAI-compatible chat completion API
// (OpenRouter, OpenAI). One request per Complete, no retries.
type OpenAIGateway struct {
	client      *openai.Client
	model       string
	temperature float32
	configured  bool
}

// NewOpenAIGateway builds the client. base may be nil to use
// http.DefaultTransport; tests pass their own.
func NewOpenAIGateway(cfg Config, base http.RoundTripper) *OpenAIGateway {
	if base == nil {
		base = http.DefaultTransport
	}
	var transport http.RoundTripper = &headerTransport{
		base:    base,
		referer: cfg.Referer,
		title:   cfg.Title,
	}
	if cfg.Credential != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Credential, TokenType: "Bearer"}),
			Base:   transport,
		}
	}

	// Auth is carried by the oauth2 transport, so the client token stays empty.
	clientCfg := openai.DefaultConfig("")
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.Endpoint, "/")
	}
	clientCfg.HTTPClient = &http.Client{
		Timeout:   cfg.timeout(),
		Transport: transport,
	}

	return &OpenAIGateway{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
		configured:  cfg.Credential != "",
	}
}

// Complete implements domain.ModelGateway.
func (g *OpenAIGateway) Complete(ctx context.Context, prompt string) (string, error) {
	if !g.configured {
		return "", domain.ErrGatewayNotConfigured
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: domain.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
		N:           1,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("chat completion rejected with status %d: %w", apiErr.HTTPStatusCode, err)
		}
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// headerTransport adds the OpenRouter attribution headers.
type headerTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer == "" && t.title == "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	if t.referer != "" {
		r.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		r.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(r)
}
