package fetcher

import (
	"context"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// ProgressFunc receives download progress as it is reported
type ProgressFunc func(ev models.ProgressEvent)

// Fetcher downloads a video to a local path
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string, onProgress ProgressFunc) (models.MediaAsset, error)
}
