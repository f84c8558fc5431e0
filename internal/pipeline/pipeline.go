package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// Run builds a multiple-choice quiz for the requested video
func (p *implPipeline) Run(ctx context.Context, req models.QuizRequest) (models.QuizResult, error) {
	if err := req.Validate(); err != nil {
		return models.QuizResult{}, err
	}
	return p.run(ctx, req.VideoURL, BuildQuizPrompt(req.QuestionCount))
}

// Summarize asks for a summary of the video followed by a quiz with answer key
func (p *implPipeline) Summarize(ctx context.Context, videoURL string) (models.QuizResult, error) {
	if strings.TrimSpace(videoURL) == "" {
		return models.QuizResult{}, fmt.Errorf("%w: video url is required", models.ErrInvalidRequest)
	}
	return p.run(ctx, videoURL, BuildSummaryPrompt())
}

func (p *implPipeline) run(ctx context.Context, videoURL, prompt string) (models.QuizResult, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting video analysis: %s", videoURL)
	p.logger.Info(ctx, "========================================")

	// Step 1: Download
	dest := filepath.Join(p.opts.DownloadDir, uuid.NewString()+".mp4")
	if !p.opts.KeepDownloads {
		// also removes partial files left by a failed download
		defer p.cleanupDownload(ctx, dest)
	}
	media, err := p.fetcher.Fetch(ctx, videoURL, dest, p.opts.OnProgress)
	if err != nil {
		p.logger.Error(ctx, "Error downloading video: %v", err)
		return models.QuizResult{}, classify(ctx, err, models.ErrDownload)
	}
	if !p.opts.KeepDownloads && media.LocalPath != dest {
		defer p.cleanupDownload(ctx, media.LocalPath)
	}
	p.logger.Info(ctx, "Downloaded video at %s", media.LocalPath)

	// Step 2: Refuse long videos before paying for the upload
	if err := p.checkDuration(media); err != nil {
		p.logger.Error(ctx, "Error: Video is too long (greater than %d minutes). Please choose a shorter video.",
			int(p.opts.MaxDuration.Minutes()))
		return models.QuizResult{}, err
	}

	// Step 3: Upload and wait until the file is ACTIVE
	asset, err := p.uploader.Upload(ctx, media.LocalPath)
	if err != nil {
		p.logger.Error(ctx, "Error uploading video to Gemini: %v", err)
		return models.QuizResult{}, classify(ctx, err, models.ErrUpload, models.ErrProcessingFailed)
	}

	// Step 4: Ask the model
	p.logger.Info(ctx, "Analyzing video with URI: %s", asset.URI)
	text, err := p.generator.Generate(ctx, asset, prompt, p.opts.RequestTimeout)
	if err != nil {
		if ctx.Err() != nil {
			return models.QuizResult{}, ctx.Err()
		}
		p.logger.Error(ctx, "An error occurred during Gemini API call: %v", err)
		return models.QuizResult{}, fmt.Errorf("%w: %w", models.ErrInference, err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Video analysis completed in %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return models.QuizResult{Text: text}, nil
}

// classify makes sure err carries a sentinel from the error taxonomy.
// Cancellation is returned unchanged.
func classify(ctx context.Context, err, sentinel error, also ...error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	for _, known := range append([]error{sentinel}, also...) {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// checkDuration rejects videos longer than MaxDuration. An unknown duration passes.
func (p *implPipeline) checkDuration(media models.MediaAsset) error {
	if media.DurationSeconds == nil {
		return nil
	}
	d := time.Duration(*media.DurationSeconds * float64(time.Second))
	if d > p.opts.MaxDuration {
		return fmt.Errorf("%w: %s exceeds limit of %s", models.ErrDurationExceeded, d, p.opts.MaxDuration)
	}
	return nil
}

// cleanupDownload removes the local video, logs a warning if it fails
func (p *implPipeline) cleanupDownload(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup downloaded video %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up downloaded video: %s", path)
	}
}
