package factory

import (
	"ai-supportbot-be/pkg/llm"
	"ai-supportbot-be/pkg/llm/ollama"
	"ai-supportbot-be/pkg/llm/openai"
	"fmt"
)

// NewLLMProvider builds the configured generation backend. The set of
// variants is closed; an unsupported type fails here, at construction, not
// on the first call.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(baseURL, apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
