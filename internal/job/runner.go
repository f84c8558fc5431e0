package job

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
	"github.com/nguyentantai21042004/video-quiz/internal/writer"
)

// Handle runs the request in requestPath and archives it on success.
// Failed requests stay in the inbox.
func (r *implRunner) Handle(ctx context.Context, requestPath string) error {
	startTime := time.Now()
	stem := strings.TrimSuffix(filepath.Base(requestPath), filepath.Ext(requestPath))

	req, err := LoadRequest(requestPath, r.defaults)
	if err != nil {
		return fmt.Errorf("load request: %w", err)
	}
	format, _ := models.ParseFormat(req.Format)

	var result models.QuizResult
	switch req.Mode {
	case ModeSummary:
		result, err = r.pipeline.Summarize(ctx, req.URL)
	default:
		result, err = r.pipeline.Run(ctx, req.QuizRequest())
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Mode, req.URL, err)
	}

	outPath, err := writer.New(r.paths.Output, stem, r.logger).Save(ctx, result, format)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	if err := r.moveToArchived(ctx, requestPath); err != nil {
		r.logger.Warn(ctx, "Failed to archive request: %v", err)
	}

	r.logger.Info(ctx, "[DONE] %s -> %s (%s)", filepath.Base(requestPath), outPath, time.Since(startTime))
	return nil
}

// moveToArchived moves a processed request file to the archived folder
func (r *implRunner) moveToArchived(ctx context.Context, requestPath string) error {
	if r.paths.Archived == "" {
		return nil
	}
	if err := os.MkdirAll(r.paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(r.paths.Archived, filepath.Base(requestPath))
	r.logger.Info(ctx, "Moving request to archived: %s -> %s", requestPath, destPath)

	if err := os.Rename(requestPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
