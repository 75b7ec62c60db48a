// Package ai proxies prompt text to the image generation and prompt
// review providers. One attempt per request; provider failures are
// wrapped and surfaced to the handler layer for translation into error
// codes.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"

	"github.com/promptn8/promptn8-server/internal/models"
)

// Model identifiers accepted by the generation endpoint.
const (
	ModelGPTImage   = "gpt-image"
	ModelNanoBanana = "nano-banana"
)

// Sentinel errors translated to HTTP responses by the handlers.
var (
	ErrNotConfigured = errors.New("provider API key not configured")
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrUnknownModel  = errors.New("unknown model")
)

// Config selects providers and model names for the service.
type Config struct {
	OpenAIAPIKey     string
	GoogleAPIKey     string
	OpenAIImageModel string
	GeminiImageModel string
	ReviewModel      string
}

// Service talks to OpenAI and Gemini. Concurrent identical review
// requests are collapsed into one upstream call.
type Service struct {
	cfg     Config
	openai  openai.Client
	gemini  *genai.Client
	reviews singleflight.Group
}

// NewService builds the provider clients. A missing key leaves the
// corresponding provider unconfigured; requests for it fail with
// ErrNotConfigured.
func NewService(ctx context.Context, cfg Config) (*Service, error) {
	s := &Service{cfg: cfg}

	if cfg.OpenAIAPIKey != "" {
		s.openai = openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, gpt-image generation and prompt review disabled")
	}

	if cfg.GoogleAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GoogleAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		s.gemini = client
	} else {
		log.Warn().Msg("GOOGLE_API_KEY not set, nano-banana generation disabled")
	}

	return s, nil
}

// GenerateImage dispatches to the provider selected by req.Model.
// Aspect ratio defaults to auto, resolution to 2K, model to gpt-image.
func (s *Service) GenerateImage(ctx context.Context, req models.GenerateImageRequest) (*models.GenerateImageResponse, error) {
	if req.Prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if req.AspectRatio == "" {
		req.AspectRatio = "auto"
	}
	if req.Resolution == "" {
		req.Resolution = "2K"
	}
	if req.Model == "" {
		req.Model = ModelGPTImage
	}

	switch req.Model {
	case ModelGPTImage:
		return s.generateOpenAI(ctx, req)
	case ModelNanoBanana:
		return s.generateGemini(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, req.Model)
	}
}

// openaiSize maps the requested aspect ratio onto the sizes the OpenAI
// image endpoint accepts: landscape ratios render at 1536x1024, portrait
// ratios at 1024x1536, and auto lets the model pick.
func openaiSize(aspectRatio string) openai.ImageGenerateParamsSize {
	switch aspectRatio {
	case "auto":
		return openai.ImageGenerateParamsSizeAuto
	case "4:3", "16:9", "21:9", "19.5:9":
		return openai.ImageGenerateParamsSize1536x1024
	case "9:19.5", "9:16":
		return openai.ImageGenerateParamsSize1024x1536
	default: // 1:1
		return openai.ImageGenerateParamsSize1024x1024
	}
}

// openaiQuality maps the requested resolution onto the endpoint's
// quality tiers.
func openaiQuality(resolution string) openai.ImageGenerateParamsQuality {
	switch resolution {
	case "4K":
		return openai.ImageGenerateParamsQualityHigh
	case "1K":
		return openai.ImageGenerateParamsQualityLow
	default:
		return openai.ImageGenerateParamsQualityMedium
	}
}

// geminiAspectRatio buckets the requested ratio into the values the
// Gemini image config accepts: landscape ratios become 16:9, portrait
// ratios 9:16, everything else 1:1.
func geminiAspectRatio(aspectRatio string) string {
	switch aspectRatio {
	case "4:3", "16:9", "21:9", "19.5:9":
		return "16:9"
	case "9:19.5", "9:16":
		return "9:16"
	default: // auto, 1:1
		return "1:1"
	}
}
