package infrastructure

import (
	"context"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiProvider asks a Gemini model for lucky numbers as schema-constrained JSON
type GeminiProvider struct {
	apiKey      string
	model       string
	temperature float32

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiProvider creates a provider. The client is created lazily on the first call.
func NewGeminiProvider(apiKey, model string, temperature float32) *GeminiProvider {
	return &GeminiProvider{
		apiKey:      strings.TrimSpace(apiKey),
		model:       model,
		temperature: temperature,
	}
}

// Configured reports whether an API key is present
func (p *GeminiProvider) Configured() bool {
	return p.apiKey != ""
}

// GenerateLuckyNumbers sends the prompt and returns the raw response text
func (p *GeminiProvider) GenerateLuckyNumbers(ctx context.Context, prompt string) (string, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"model":         p.model,
		"prompt_length": len(prompt),
	}).Debug("Requesting lucky numbers from Gemini")

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), p.generateConfig())
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return "", nil
	}

	return resp.Text(), nil
}

func (p *GeminiProvider) getClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if !p.Configured() {
		return nil, fmt.Errorf("gemini API key is missing")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	p.client = client
	return client, nil
}

func (p *GeminiProvider) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(p.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   luckyNumbersSchema(),
	}
}

// luckyNumbersSchema constrains the model output to the set shape. The model may
// still ignore it, so the answer is repaired by the caller.
func luckyNumbersSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"reds": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeInteger},
				Description: "6 unique integers between 1 and 33",
			},
			"blue": {
				Type:        genai.TypeInteger,
				Description: "1 integer between 1 and 16",
			},
			"reasoning": {
				Type:        genai.TypeString,
				Description: "A short, mystical or fun explanation of why these numbers were chosen based on the user's input.",
			},
		},
		Required: []string{"reds", "blue", "reasoning"},
	}
}
