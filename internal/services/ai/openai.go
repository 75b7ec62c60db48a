package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"

	"github.com/promptn8/promptn8-server/internal/models"
)

// reviewInstruction is the fixed system prompt for the review endpoint.
const reviewInstruction = "You are an expert at writing prompts for AI image generation. " +
	"Review this prompt and provide 3-5 specific, actionable suggestions to improve it " +
	"for better image generation results. Focus on clarity, detail, composition, " +
	"lighting, and style. Be concise."

func (s *Service) generateOpenAI(ctx context.Context, req models.GenerateImageRequest) (*models.GenerateImageResponse, error) {
	if s.cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrNotConfigured)
	}

	result, err := s.openai.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:   openai.ImageModel(s.cfg.OpenAIImageModel),
		Prompt:  req.Prompt,
		Size:    openaiSize(req.AspectRatio),
		Quality: openaiQuality(req.Resolution),
	})
	if err != nil {
		return nil, fmt.Errorf("openai image generation failed: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("openai image generation returned no image data")
	}

	return &models.GenerateImageResponse{
		ImageData: result.Data[0].B64JSON,
		MimeType:  "image/png",
	}, nil
}

// ReviewPrompt asks the review model for improvement suggestions.
// Concurrent calls with the same prompt share one upstream request.
func (s *Service) ReviewPrompt(ctx context.Context, prompt string) (*models.ReviewResponse, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if s.cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrNotConfigured)
	}

	result, err, _ := s.reviews.Do(prompt, func() (any, error) {
		response, err := s.openai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(s.cfg.ReviewModel),
			Messages: []openai.ChatCompletionMessageParamUnion{
				{
					OfSystem: &openai.ChatCompletionSystemMessageParam{
						Content: openai.ChatCompletionSystemMessageParamContentUnion{
							OfString: openai.String(reviewInstruction),
						},
					},
				},
				{
					OfUser: &openai.ChatCompletionUserMessageParam{
						Content: openai.ChatCompletionUserMessageParamContentUnion{
							OfString: openai.String(prompt),
						},
					},
				},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("openai review request failed: %w", err)
		}
		if len(response.Choices) == 0 {
			return nil, fmt.Errorf("openai review returned no choices")
		}
		suggestions := strings.TrimSpace(response.Choices[0].Message.Content)
		if suggestions == "" {
			return nil, fmt.Errorf("openai review returned empty response")
		}
		return suggestions, nil
	})
	if err != nil {
		return nil, err
	}

	return &models.ReviewResponse{Suggestions: result.(string)}, nil
}
