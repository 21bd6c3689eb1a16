package provider

import (
	"context"
	"fmt"

	logx "github.com/kdi-analyzer/server/pkg/logger"
	"google.golang.org/genai"
)

// Config holds the Gemini API credential and endpoint override. The key is
// deliberately not validated at startup; a missing or invalid key surfaces as
// a provider-call failure on the first analysis or chat attempt.
type Config struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
}

// New builds the shared Gemini client used by both the analyzer and the chat
// service.
func New(ctx context.Context, cfg Config) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	return client, nil
}
