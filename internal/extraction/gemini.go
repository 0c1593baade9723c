package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/jonathan/ae-qualify/internal/types"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiExtractor extracts form fields from document text using Google
// Gemini. Each document class maps to its own schema and prompt.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates a Gemini-backed extractor.
func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{client: client, model: model}, nil
}

// Extract runs the document through the model and returns the partial
// record for its class's target form.
func (g *GeminiExtractor) Extract(ctx context.Context, doc Document) (Result, error) {
	schema := SchemaForClass(ClassifyDocument(doc.FileName))
	prompt := BuildExtractionPrompt(schema, doc.Text)

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, NewExtractionError(doc.FileName, "generate", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return Result{}, NewExtractionError(doc.FileName, "generate", err)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &fields); err != nil {
		return Result{}, NewExtractionError(doc.FileName, "parse", err)
	}
	assignChildIDs(fields)

	raw, err := json.Marshal(fields)
	if err != nil {
		return Result{}, NewExtractionError(doc.FileName, "parse", err)
	}

	// Verify the payload decodes against the target shape before any caller
	// tries to merge it.
	if _, err := types.DecodePatch(schema.Target, raw); err != nil {
		return Result{}, NewExtractionError(doc.FileName, "decode", err)
	}

	return Result{
		Success:    true,
		Target:     schema.Target,
		Fields:     raw,
		Confidence: confidenceForClass(ClassifyDocument(doc.FileName)),
	}, nil
}

// Close releases resources held by the extractor.
func (g *GeminiExtractor) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// confidenceForClass is a coarse per-class prior. The Gemini API does not
// report calibrated confidence, so the class heuristic stands in.
func confidenceForClass(class DocClass) float64 {
	switch class {
	case DocResume:
		return 0.92
	case DocProject:
		return 0.88
	case DocCertificate:
		return 0.95
	case DocContract:
		return 0.91
	default:
		return 0.65
	}
}

// assignChildIDs mints fresh ids for child entries in collection fields.
// The model is told to leave ids empty; they must never collide with ids
// already in the state tree.
func assignChildIDs(fields map[string]any) {
	for _, value := range fields {
		items, ok := value.([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if id, _ := entry["id"].(string); id == "" {
				entry["id"] = uuid.NewString()
			}
		}
	}
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
