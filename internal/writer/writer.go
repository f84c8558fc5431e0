package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// Save writes result in the given format, replacing any existing file
func (w *implWriter) Save(ctx context.Context, result models.QuizResult, format models.Format) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.dir, w.basename+format.Ext())

	var err error
	switch format {
	case models.RichDocument:
		err = writeDocx(result.Text, path)
	default:
		err = os.WriteFile(path, []byte(result.Text), 0644)
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	w.logger.Info(ctx, "Result saved as %s", path)
	return path, nil
}
