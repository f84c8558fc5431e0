package uploader

import (
	"context"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// FileStore is the remote storage an Uploader pushes to and polls.
type FileStore interface {
	UploadFile(ctx context.Context, path string) (models.RemoteAsset, error)
	GetFile(ctx context.Context, name string) (models.RemoteAsset, error)
}

// Uploader uploads a local file and blocks until it is ready for inference
type Uploader interface {
	Upload(ctx context.Context, localPath string) (models.RemoteAsset, error)
}
