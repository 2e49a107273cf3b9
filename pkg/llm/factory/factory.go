package factory

import (
	"fmt"

	"catalog-assistant-be/pkg/llm"
	"catalog-assistant-be/pkg/llm/gemini"
	"catalog-assistant-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, baseURL, geminiKey string) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		return gemini.NewGeminiProvider(geminiKey), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
