package llm

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// GeminiModel is the default Gemini model.
const GeminiModel = "gemini-2.5-flash"

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli     *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini API client.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (client *GeminiClient, err error) {
	if apiKey == "" {
		err = errors.New("gemini API key is required")
		return client, err
	}
	if model == "" {
		model = GeminiModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	var cli *genai.Client
	cli, err = genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create genai client")
		return client, err
	}

	client = &GeminiClient{
		cli:     cli,
		model:   model,
		timeout: timeout,
	}
	return client, err
}

// Name identifies the client in logs.
func (g *GeminiClient) Name() (name string) {
	name = "gemini:" + g.model
	return name
}

// Generate sends the prompt to Gemini and concatenates the text parts of the first candidate.
func (g *GeminiClient) Generate(ctx context.Context, req Request) (text string, err error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = responseSchema(req.Call)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	contents := []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}}}

	var resp *genai.GenerateContentResponse
	resp, err = g.cli.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			err = &StatusError{Code: apiErr.Code, Body: apiErr.Message}
		}
		err = errors.Wrap(err, "gemini request failed")
		return text, err
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		err = errors.New("no candidates in Gemini response")
		return text, err
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text = b.String()
	if strings.TrimSpace(text) == "" {
		err = errors.New("no content in Gemini response")
		return text, err
	}

	return text, err
}

// responseSchema constrains Gemini's JSON output to the shape each call is parsed with.
// Calls without a fixed shape get nil.
func responseSchema(call string) (schema *genai.Schema) {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
	strList := func() *genai.Schema { return &genai.Schema{Type: genai.TypeArray, Items: str()} }

	switch call {
	case CallHolistic:
		schema = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"holistic_score":     {Type: genai.TypeInteger},
				"holistic_rationale": str(),
				"short_rationale":    str(),
				"positive_traits":    strList(),
				"challenges":         strList(),
			},
			Required: []string{"holistic_score", "holistic_rationale", "short_rationale", "positive_traits", "challenges"},
		}
	case CallSuggestions:
		schema = &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"suggested_name": str(),
					"new_score":      {Type: genai.TypeInteger},
					"reason":         str(),
				},
				Required: []string{"suggested_name", "new_score", "reason"},
			},
		}
	case CallCompatibility:
		schema = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":      str(),
				"strengths":  str(),
				"challenges": str(),
				"summary":    str(),
			},
			Required: []string{"title", "strengths", "challenges", "summary"},
		}
	}

	return schema
}
