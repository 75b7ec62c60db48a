package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"github.com/promptn8/promptn8-server/internal/models"
)

func (s *Service) generateGemini(ctx context.Context, req models.GenerateImageRequest) (*models.GenerateImageResponse, error) {
	if s.gemini == nil {
		return nil, fmt.Errorf("gemini: %w", ErrNotConfigured)
	}

	response, err := s.gemini.Models.GenerateContent(ctx,
		s.cfg.GeminiImageModel,
		genai.Text(req.Prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig: &genai.ImageConfig{
				AspectRatio: geminiAspectRatio(req.AspectRatio),
				ImageSize:   req.Resolution,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini image generation failed: %w", err)
	}

	for _, candidate := range response.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return &models.GenerateImageResponse{
					ImageData: encodeBase64(part.InlineData.Data),
					MimeType:  mimeType,
				}, nil
			}
		}
	}

	return nil, fmt.Errorf("gemini image generation returned no image data")
}

func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
