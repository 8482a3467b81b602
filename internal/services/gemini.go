package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiService is the external AI capability behind the screener: OCR for
// resume images and schema-constrained scoring. Keeping it an interface lets
// extraction and orchestration be tested against canned responses.
type GeminiService interface {
	ExtractImageText(ctx context.Context, mimeType string, data []byte) (string, error)
	ScoreResume(ctx context.Context, jobDescription, resumeText string) (string, error)
}

type geminiService struct {
	client        *genai.Client
	scoreModel    string
	ocrModel      string
	promptBuilder *PromptBuilder
}

// candidateSchema constrains the scoring response to exactly the seven
// analysis fields, so the reply is JSON by contract rather than by parsing
// heuristics.
var candidateSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":          {Type: genai.TypeString},
		"email":         {Type: genai.TypeString},
		"phone":         {Type: genai.TypeString},
		"score":         {Type: genai.TypeInteger},
		"justification": {Type: genai.TypeString},
		"location":      {Type: genai.TypeString},
		"matching_keywords": {
			Type:     genai.TypeArray,
			Items:    &genai.Schema{Type: genai.TypeString},
			MinItems: genai.Ptr(int64(3)),
			MaxItems: genai.Ptr(int64(5)),
		},
	},
	Required: []string{"name", "email", "phone", "score", "justification", "location", "matching_keywords"},
}

func NewGeminiService(apiKey, scoreModel, ocrModel string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		scoreModel:    scoreModel,
		ocrModel:      ocrModel,
		promptBuilder: NewPromptBuilder(),
	}, nil
}

// ExtractImageText implements GeminiService. One multimodal call: the fixed
// OCR instruction plus the raw image bytes under their declared MIME type.
func (g *geminiService) ExtractImageText(ctx context.Context, mimeType string, data []byte) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(OCRInstruction),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.ocrModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to run OCR: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in OCR response")
	}

	return text, nil
}

// ScoreResume implements GeminiService. A single structured-generation call;
// the returned string is the JSON payload for the seven analysis fields.
// No retry: one attempt per resume.
func (g *geminiService) ScoreResume(ctx context.Context, jobDescription, resumeText string) (string, error) {
	prompt := g.promptBuilder.BuildScoringPrompt(jobDescription, resumeText)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   candidateSchema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.scoreModel, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate analysis: %w", err)
	}

	payload := resp.Text()
	if payload == "" {
		return "", fmt.Errorf("no content in analysis response")
	}

	return payload, nil
}
