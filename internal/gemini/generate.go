package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
	"google.golang.org/genai"
)

// Generate asks the model about an uploaded video. A non-positive timeout
// leaves the deadline to ctx.
func (s *implService) Generate(ctx context.Context, asset models.RemoteAsset, prompt string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	mimeType := asset.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(asset.URI, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	s.logger.Info(ctx, "Making LLM inference request (model %s)...", s.model)
	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(result)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
