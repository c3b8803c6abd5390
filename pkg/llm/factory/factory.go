package factory

import (
	"fmt"

	"plot-editor-be/pkg/llm"
	"plot-editor-be/pkg/llm/ollama"
	"plot-editor-be/pkg/llm/openai"
)

// NewLLMProvider selects a text-generation backend by name.
func NewLLMProvider(providerType, modelName, ollamaBaseURL, openAIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	case "openai":
		return openai.NewOpenAIProvider(openAIKey, modelName)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
