// Package gemini provides a domain.Generator backed by the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kailas-cloud/talentmatch/internal/domain"
	"github.com/kailas-cloud/talentmatch/internal/metrics"
)

const (
	providerName = "gemini"
	defaultModel = "gemini-2.0-flash"
)

// Generator wraps the Google GenAI client behind domain.Generator.
type Generator struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

// Config holds the Gemini provider settings.
type Config struct {
	APIKey string
	Model  string
	Logger *zap.Logger
}

// NewGenerator creates a Gemini-backed text generator.
func NewGenerator(ctx context.Context, cfg *Config) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{client: client, modelName: model, logger: logger}, nil
}

// Generate implements domain.Generator. Returns the concatenated text parts
// of the first response with transport-level metrics recorded.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt must not be empty: %w", domain.ErrGenerationProvider)
	}

	start := time.Now()

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)

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
		return "", fmt.Errorf("gemini generate: %v: %w", err, domain.ErrGenerationProvider)
	}

	text := collectText(resp)
	if text == "" {
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

	return text, nil
}

// HealthCheck verifies API availability via a model lookup (free endpoint).
func (g *Generator) HealthCheck(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.modelName, nil); err != nil {
		return fmt.Errorf("get model %s: %w", g.modelName, err)
	}
	return nil
}

// Model returns the configured model name.
func (g *Generator) Model() string { return g.modelName }

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}
	return strings.TrimSpace(b.String())
}
