package extract

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/kmlxly/splitit-app-sub001/internal/media"
)

// geminiInvoker issues extraction requests against the Gemini API.
type geminiInvoker struct {
	client *genai.Client
}

func newGeminiInvoker(ctx context.Context, apiKey string) (*geminiInvoker, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiInvoker{client: client}, nil
}

// Invoke sends one instruction plus media payload to the given model and
// returns the raw text of the response.
func (g *geminiInvoker) Invoke(ctx context.Context, model, instruction string, payload media.Payload) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: instruction},
				{
					InlineData: &genai.Blob{
						MIMEType: payload.MIMEType,
						Data:     payload.Data,
					},
				},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return "", fmt.Errorf("%w: %v", ErrModelNotFound, err)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
