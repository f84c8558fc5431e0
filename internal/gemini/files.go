package gemini

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
	"google.golang.org/genai"
)

var videoMIMETypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".flv":  "video/x-flv",
}

// UploadFile pushes a local video to the Files API
func (s *implService) UploadFile(ctx context.Context, path string) (models.RemoteAsset, error) {
	mimeType := mimeTypeFor(path)
	s.logger.Debug(ctx, "Uploading %s as %s", path, mimeType)

	f, err := s.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: filepath.Base(path),
	})
	if err != nil {
		return models.RemoteAsset{}, fmt.Errorf("upload file: %w", err)
	}

	return toRemoteAsset(f), nil
}

// GetFile fetches the current state of an uploaded file
func (s *implService) GetFile(ctx context.Context, name string) (models.RemoteAsset, error) {
	f, err := s.client.Files.Get(ctx, name, nil)
	if err != nil {
		return models.RemoteAsset{}, fmt.Errorf("get file %s: %w", name, err)
	}
	return toRemoteAsset(f), nil
}

func toRemoteAsset(f *genai.File) models.RemoteAsset {
	if f == nil {
		return models.RemoteAsset{State: models.AssetStateUnspecified}
	}

	state := models.AssetState(f.State)
	switch state {
	case models.AssetStateProcessing, models.AssetStateActive, models.AssetStateFailed:
	default:
		state = models.AssetStateUnspecified
	}

	return models.RemoteAsset{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    state,
	}
}

func mimeTypeFor(path string) string {
	if t, ok := videoMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return "video/mp4"
}
