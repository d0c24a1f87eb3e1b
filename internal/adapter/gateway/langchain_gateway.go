package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"examgen/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// LangchainGateway adapts any langchaingo model, used for self-hosted
// backends such as Ollama.
type LangchainGateway struct {
	llm         llms.Model
	temperature float64
	timeout     time.Duration
}

func NewLangchainGateway(llm llms.Model, cfg Config) *LangchainGateway {
	return &LangchainGateway{
		llm:         llm,
		temperature: float64(cfg.Temperature),
		timeout:     cfg.timeout(),
	}
}

// Complete implements domain.ModelGateway.
func (g *LangchainGateway) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, domain.SystemInstruction),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}, llms.WithTemperature(g.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("model request timed out after %s: %w", g.timeout, err)
		}
		return "", fmt.Errorf("model call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", domain.ErrEmptyCompletion
	}
	return resp.Choices[0].Content, nil
}
