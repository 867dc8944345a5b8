package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator is the boundary to the generative model. Services that
// need text or vision completions depend on this interface so tests can
// swap in a fake.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateFromImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error)
}

// GeminiService talks to the Google Gemini API.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &GeminiService{client: client, model: model}, nil
}

func (g *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return firstText(resp)
}

// GenerateFromImage sends a prompt together with inline image bytes.
// mimeType must be image/png or image/jpeg.
func (g *GeminiService) GenerateFromImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error) {
	format := strings.TrimPrefix(mimeType, "image/")
	if format != "png" && format != "jpeg" {
		return "", fmt.Errorf("unsupported image type %q", mimeType)
	}
	resp, err := g.model.GenerateContent(ctx,
		genai.ImageData(format, image),
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return firstText(resp)
}

func (g *GeminiService) Close() error {
	return g.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return string(text), nil
}
