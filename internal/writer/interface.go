package writer

import (
	"context"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// Writer persists a result and returns the path it wrote
type Writer interface {
	Save(ctx context.Context, result models.QuizResult, format models.Format) (string, error)
}
