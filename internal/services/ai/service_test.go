package ai

import (
	"context"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptn8/promptn8-server/internal/models"
)

func TestOpenAISizeMapping(t *testing.T) {
	cases := map[string]openai.ImageGenerateParamsSize{
		"auto":   openai.ImageGenerateParamsSizeAuto,
		"1:1":    openai.ImageGenerateParamsSize1024x1024,
		"4:3":    openai.ImageGenerateParamsSize1536x1024,
		"16:9":   openai.ImageGenerateParamsSize1536x1024,
		"21:9":   openai.ImageGenerateParamsSize1536x1024,
		"19.5:9": openai.ImageGenerateParamsSize1536x1024,
		"9:16":   openai.ImageGenerateParamsSize1024x1536,
		"9:19.5": openai.ImageGenerateParamsSize1024x1536,
	}
	for ratio, want := range cases {
		assert.Equal(t, want, openaiSize(ratio), ratio)
	}
}

func TestOpenAIQualityMapping(t *testing.T) {
	assert.Equal(t, openai.ImageGenerateParamsQualityHigh, openaiQuality("4K"))
	assert.Equal(t, openai.ImageGenerateParamsQualityMedium, openaiQuality("2K"))
	assert.Equal(t, openai.ImageGenerateParamsQualityLow, openaiQuality("1K"))
	assert.Equal(t, openai.ImageGenerateParamsQualityMedium, openaiQuality(""))
}

func TestGeminiAspectRatioMapping(t *testing.T) {
	for _, landscape := range []string{"4:3", "16:9", "21:9", "19.5:9"} {
		assert.Equal(t, "16:9", geminiAspectRatio(landscape), landscape)
	}
	for _, portrait := range []string{"9:16", "9:19.5"} {
		assert.Equal(t, "9:16", geminiAspectRatio(portrait), portrait)
	}
	assert.Equal(t, "1:1", geminiAspectRatio("1:1"))
	assert.Equal(t, "1:1", geminiAspectRatio("auto"))
}

func TestGenerateImageValidation(t *testing.T) {
	svc, err := NewService(context.Background(), Config{})
	require.NoError(t, err)

	_, err = svc.GenerateImage(context.Background(), models.GenerateImageRequest{})
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	_, err = svc.GenerateImage(context.Background(), models.GenerateImageRequest{
		Prompt: "a portrait",
		Model:  "dall-e-9000",
	})
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestGenerateImageRequiresProviderKeys(t *testing.T) {
	svc, err := NewService(context.Background(), Config{})
	require.NoError(t, err)

	_, err = svc.GenerateImage(context.Background(), models.GenerateImageRequest{
		Prompt: "a portrait",
		Model:  ModelGPTImage,
	})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = svc.GenerateImage(context.Background(), models.GenerateImageRequest{
		Prompt: "a portrait",
		Model:  ModelNanoBanana,
	})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = svc.ReviewPrompt(context.Background(), "a portrait")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
