package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"hopa/internal/api/controllers"
	"hopa/pkg/llm"
)

var Module = fx.Provide(
	ProvideChatCompleter,
	ProvideImageGenerator,
	controllers.NewAIController,
)

// ProvideChatCompleter creates the completion client selected by
// AI_PROVIDER. Kimi is the default, matching the product's primary model.
func ProvideChatCompleter() (llm.ChatCompleter, error) {
	cfg := getAIConfig()

	log.Printf("Initializing %s completion client with model: %s", cfg.Provider, cfg.Model)

	client, err := llm.NewChatCompleter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	return client, nil
}

func ProvideImageGenerator() llm.ImageGenerator {
	apiKey := os.Getenv("DOUBAO_API_KEY")
	if apiKey == "" {
		log.Printf("DOUBAO_API_KEY is not set; image generation will fail until it is configured")
	}
	return llm.NewDoubaoClient(
		apiKey,
		getEnvWithDefault("DOUBAO_MODEL", ""),
		os.Getenv("DOUBAO_BASE_URL"),
	)
}

func getAIConfig() llm.Config {
	provider := getEnvWithDefault("AI_PROVIDER", "kimi")

	cfg := llm.Config{Provider: provider}

	switch strings.ToLower(provider) {
	case "kimi":
		cfg.APIKey = os.Getenv("KIMI_API_KEY")
		cfg.Model = getEnvWithDefault("KIMI_MODEL", "moonshot-v1-8k")
		cfg.BaseURL = os.Getenv("KIMI_BASE_URL")
		if cfg.APIKey == "" {
			log.Fatal("KIMI_API_KEY is required when using the kimi provider")
		}
	case "gemini":
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.Model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if cfg.APIKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the gemini provider")
		}
	case "proxy":
		cfg.BaseURL = os.Getenv("AI_PROXY_URL")
		if cfg.BaseURL == "" {
			log.Fatal("AI_PROXY_URL is required when using the proxy provider")
		}
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
