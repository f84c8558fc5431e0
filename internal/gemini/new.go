package gemini

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"google.golang.org/genai"
)

type implService struct {
	client *genai.Client
	logger logger.Logger
	model  string
}

// New creates a Service talking to the Gemini API with the given key.
func New(ctx context.Context, apiKey, model string, log logger.Logger) (Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implService{
		client: client,
		logger: log,
		model:  model,
	}, nil
}
