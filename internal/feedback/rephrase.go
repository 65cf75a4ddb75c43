package feedback

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// Rephraser is the interface both rephrasing implementations satisfy.
type Rephraser interface {
	Rephrase(ctx context.Context, template string) (string, error)
}

const (
	rephraseMaxTokens   = 1024
	rephraseTemperature = 0.7
)

const rephraseSystemPrompt = `You rewrite study-feedback messages for language learners. Rewrite the message you are given so it reads more naturally and encouragingly, while keeping its structure, all numbered recommendations, all scores, level labels and links exactly intact. Respond with the rewritten message only.`

// NewRephraser picks an implementation from the environment: the mock for
// local development, otherwise the Anthropic API.
func NewRephraser() Rephraser {
	if os.Getenv("MOCK_REPHRASER") == "true" {
		log.Println("Rephraser using mock implementation")
		return NewMockRephraser()
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-opus-4-5-20251101"
	}
	log.Println("Rephraser using Anthropic API:", model)
	return NewAPIClient(model)
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Rephrase(ctx context.Context, template string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   rephraseMaxTokens,
		Temperature: param.NewOpt(rephraseTemperature),
		System: []anthropic.TextBlockParam{
			{Text: rephraseSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(template)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return "", err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return "", fmt.Errorf("no text content in API response")
	}

	return responseText, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			select {
			case <-time.After(sleepDuration):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockRephraser — Local Development ──────────────────────

type MockRephraser struct{}

func NewMockRephraser() *MockRephraser {
	return &MockRephraser{}
}

// Rephrase returns the template unchanged, which is indistinguishable from a
// production fallback.
func (m *MockRephraser) Rephrase(ctx context.Context, template string) (string, error) {
	return template, nil
}
