package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/video-quiz/internal/fetcher"
	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/internal/uploader"
)

const (
	DefaultMaxDuration    = 3540 * time.Second
	DefaultRequestTimeout = 600 * time.Second
)

// Options tunes a Pipeline. Zero values take the defaults above.
type Options struct {
	DownloadDir    string
	MaxDuration    time.Duration
	RequestTimeout time.Duration
	KeepDownloads  bool
	OnProgress     fetcher.ProgressFunc
}

type implPipeline struct {
	fetcher   fetcher.Fetcher
	uploader  uploader.Uploader
	generator Generator
	logger    logger.Logger
	opts      Options
}

// New creates a new Pipeline instance
func New(f fetcher.Fetcher, u uploader.Uploader, g Generator, log logger.Logger, opts Options) Pipeline {
	if opts.DownloadDir == "" {
		opts.DownloadDir = "."
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = DefaultMaxDuration
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	return &implPipeline{
		fetcher:   f,
		uploader:  u,
		generator: g,
		logger:    log,
		opts:      opts,
	}
}
