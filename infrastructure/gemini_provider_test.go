package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiProvider_Configured(t *testing.T) {
	t.Parallel()

	assert.False(t, NewGeminiProvider("", "gemini-2.5-flash", 1.1).Configured())
	assert.False(t, NewGeminiProvider("   ", "gemini-2.5-flash", 1.1).Configured())
	assert.True(t, NewGeminiProvider("key", "gemini-2.5-flash", 1.1).Configured())
}

func TestGeminiProvider_MissingKeyFailsWithoutNetwork(t *testing.T) {
	t.Parallel()

	provider := NewGeminiProvider("", "gemini-2.5-flash", 1.1)
	text, err := provider.GenerateLuckyNumbers(context.Background(), "prompt")
	require.Error(t, err)
	assert.Empty(t, text)
}

func TestGeminiProvider_GenerateConfig(t *testing.T) {
	t.Parallel()

	cfg := NewGeminiProvider("key", "gemini-2.5-flash", 0.5).generateConfig()
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, float32(0.5), *cfg.Temperature)
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)

	schema := cfg.ResponseSchema
	require.NotNil(t, schema)
	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.ElementsMatch(t, []string{"reds", "blue", "reasoning"}, schema.Required)
	assert.Equal(t, genai.TypeArray, schema.Properties["reds"].Type)
	assert.Equal(t, genai.TypeInteger, schema.Properties["reds"].Items.Type)
	assert.Equal(t, genai.TypeInteger, schema.Properties["blue"].Type)
	assert.Equal(t, genai.TypeString, schema.Properties["reasoning"].Type)
}
