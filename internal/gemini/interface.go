package gemini

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// Service is the subset of the Gemini API used by the pipeline.
type Service interface {
	UploadFile(ctx context.Context, path string) (models.RemoteAsset, error)
	GetFile(ctx context.Context, name string) (models.RemoteAsset, error)
	Generate(ctx context.Context, asset models.RemoteAsset, prompt string, timeout time.Duration) (string, error)
}
