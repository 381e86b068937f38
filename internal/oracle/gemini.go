package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/metrics"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by Gemini.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini implements [Oracle] with the Gemini API.
type Gemini struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  *logger.Logger
}

// NewGemini creates a Gemini API client for cfg.
func NewGemini(ctx context.Context, cfg config.Oracle, log *logger.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Err(err).Str("func", "NewGemini").Msg("error creating genai client")
		return nil, fmt.Errorf("error creating genai client: %w", err)
	}

	return newGemini(client.Models, cfg, log), nil
}

func newGemini(models contentGenerator, cfg config.Oracle, log *logger.Logger) *Gemini {
	return &Gemini{
		models:  models,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  log,
	}
}

// Generate asks the model for a JSON answer constrained by schema.
//
// The call is bounded by the configured timeout. Transport failures and
// deadline expiry yield [ErrOracleUnavailable]; an empty answer yields
// [ErrOracleOutputInvalid]. The returned bytes are not yet validated.
func (g *Gemini) Generate(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	log := logger.FromContext(ctx)
	started := time.Now()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		log.Err(err).
			Str("func", "Gemini.Generate").
			Str("model", g.model).
			Dur("elapsed", time.Since(started)).
			Msg("generative call failed")
		metrics.ObserveOracleCall(metrics.OutcomeUnavailable, started)
		return nil, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	var text string
	if resp != nil {
		text = cleanJSON(resp.Text())
	}
	if text == "" {
		log.Warn().Str("func", "Gemini.Generate").Str("model", g.model).Msg("generative call returned no text")
		metrics.ObserveOracleCall(metrics.OutcomeInvalidOutput, started)
		return nil, fmt.Errorf("%w: empty response", ErrOracleOutputInvalid)
	}

	log.Debug().
		Str("func", "Gemini.Generate").
		Str("model", g.model).
		Int("response_bytes", len(text)).
		Dur("elapsed", time.Since(started)).
		Msg("generative call succeeded")
	metrics.ObserveOracleCall(metrics.OutcomeOK, started)

	return []byte(text), nil
}

// cleanJSON strips a surrounding markdown code fence, which the model
// sometimes adds despite the JSON response type.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
