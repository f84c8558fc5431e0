package fetcher

import (
	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/pkg/executor"
)

type implFetcher struct {
	binary   string
	format   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Fetcher backed by the yt-dlp binary
func New(binary, format string, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		binary:   binary,
		format:   format,
		executor: exec,
		logger:   log,
	}
}
