package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// Generator produces text about an uploaded video
type Generator interface {
	Generate(ctx context.Context, asset models.RemoteAsset, prompt string, timeout time.Duration) (string, error)
}

// Pipeline runs fetch -> upload -> poll -> generate for one video
type Pipeline interface {
	Run(ctx context.Context, req models.QuizRequest) (models.QuizResult, error)
	Summarize(ctx context.Context, videoURL string) (models.QuizResult, error)
}
