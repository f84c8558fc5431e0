package job

import (
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	ModeQuiz    = "quiz"
	ModeSummary = "summary"
)

// Request is the content of an inbox request file
type Request struct {
	URL       string `yaml:"url"`
	Questions int    `yaml:"questions"`
	Format    string `yaml:"format"`
	Mode      string `yaml:"mode"`
}

// Defaults fill fields a request file leaves out
type Defaults struct {
	Questions int
	Format    string
}

// LoadRequest reads and validates a request file
func LoadRequest(path string, def Defaults) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("read request: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: parse %s: %w", models.ErrInvalidRequest, path, err)
	}

	req.URL = strings.TrimSpace(req.URL)
	req.Mode = strings.ToLower(strings.TrimSpace(req.Mode))
	if req.Mode == "" {
		req.Mode = ModeQuiz
	}
	if req.Questions == 0 {
		req.Questions = def.Questions
	}
	if req.Format == "" {
		req.Format = def.Format
	}

	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks the request for the selected mode
func (r Request) Validate() error {
	if _, err := models.ParseFormat(r.Format); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}
	switch r.Mode {
	case ModeQuiz:
		return r.QuizRequest().Validate()
	case ModeSummary:
		if r.URL == "" {
			return fmt.Errorf("%w: video url is required", models.ErrInvalidRequest)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", models.ErrInvalidRequest, r.Mode)
	}
}

// QuizRequest converts the file content to a pipeline request
func (r Request) QuizRequest() models.QuizRequest {
	return models.QuizRequest{VideoURL: r.URL, QuestionCount: r.Questions}
}
