package gateway

import (
	"fmt"
	"net/http"

	"examgen/internal/config"
	"examgen/internal/domain"

	"github.com/tmc/langchaingo/llms/ollama"
)

const (
	OpenRouterEndpoint = "https://openrouter.ai/api/v1"
	OpenAIEndpoint     = "https://api.openai.com/v1"
	OllamaEndpoint     = "http://localhost:11434"
)

// FromConfig picks the adapter for cfg.Provider. An empty endpoint falls
// back to the provider's public default.
func FromConfig(cfg config.LLMConfig) (domain.ModelGateway, error) {
	gwCfg := Config{
		Endpoint:    cfg.Endpoint,
		Credential:  cfg.Credential,
		TimeoutMs:   cfg.TimeoutMs,
		ModelName:   cfg.ModelName,
		Temperature: float32(cfg.Temperature),
	}

	switch cfg.Provider {
	case "openrouter":
		gwCfg.Endpoint = orDefault(gwCfg.Endpoint, OpenRouterEndpoint)
		gwCfg.Referer = cfg.Referer
		gwCfg.Title = cfg.Title
		return NewOpenAIGateway(gwCfg, nil), nil
	case "openai":
		gwCfg.Endpoint = orDefault(gwCfg.Endpoint, OpenAIEndpoint)
		return NewOpenAIGateway(gwCfg, nil), nil
	case "ollama":
		llm, err := ollama.New(
			ollama.WithServerURL(orDefault(cfg.Endpoint, OllamaEndpoint)),
			ollama.WithModel(cfg.ModelName),
			ollama.WithFormat("json"),
			ollama.WithHTTPClient(&http.Client{Timeout: gwCfg.timeout()}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewLangchainGateway(llm, gwCfg), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
