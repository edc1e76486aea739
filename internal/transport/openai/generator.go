// Package openai provides a domain.Generator backed by any
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/talentmatch/internal/domain"
	"github.com/kailas-cloud/talentmatch/internal/metrics"
)

const (
	providerName = "openai"
	defaultModel = openai.GPT4oMini
)

// Generator wraps an OpenAI-compatible chat completion client behind
// domain.Generator.
type Generator struct {
	client    *openai.Client
	modelName string
	logger    *zap.Logger
}

// Config holds the provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewGenerator creates an OpenAI-compatible text generator.
func NewGenerator(cfg *Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		client:    openai.NewClientWithConfig(clientCfg),
		modelName: model,
		logger:    logger,
	}
}

// Generate implements domain.Generator via a single-turn chat completion.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(providerName, g.modelName, "error").Inc()
		metrics.GenerationErrorsTotal.WithLabelValues(providerName, g.modelName, "api_error").Inc()
		g.logger.Warn("generation request failed",
			zap.String("provider", providerName),
			zap.String("model", g.modelName),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		metrics.GenerationRequestsTotal.WithLabelValues(providerName, g.modelName, "error").Inc()
		metrics.GenerationErrorsTotal.WithLabelValues(providerName, g.modelName, "empty_response").Inc()
		g.logger.Warn("empty generation response",
			zap.String("provider", providerName),
			zap.String("model", g.modelName),
		)
		return "", fmt.Errorf("empty generation response: %w", domain.ErrGenerationProvider)
	}

	metrics.GenerationRequestsTotal.WithLabelValues(providerName, g.modelName, "success").Inc()
	metrics.GenerationRequestDuration.WithLabelValues(providerName, g.modelName).Observe(duration.Seconds())

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (g *Generator) HealthCheck(ctx context.Context) error {
	if _, err := g.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// Model returns the configured model name.
func (g *Generator) Model() string { return g.modelName }

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrGenerationProvider for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrGenerationProvider

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("generation API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("generation API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("generation API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("generation request failed: %w", wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
