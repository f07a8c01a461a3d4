package ai

import (
	"log"

	"github.com/FireBushtree/stronger-body/internal/config"
)

// NewProvider builds the provider selected by AI_MODE (mock | openai).
// Missing credentials degrade to the mock provider rather than failing
// startup — the rest of the dashboard works without an agent.
func NewProvider(cfg *config.Config) Provider {
	switch cfg.AIMode {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Println("ai: AI_MODE=openai but OPENAI_API_KEY is not set, using mock provider")
			return NewMockProvider()
		}
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AIMaxOutputTokens, cfg.AITemperature, cfg.AITimeoutSeconds)
	default:
		return NewMockProvider()
	}
}
