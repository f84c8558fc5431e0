package writer

import (
	"github.com/nguyentantai21042004/video-quiz/internal/logger"
)

// DefaultBasename is the file stem used when none is given
const DefaultBasename = "quiz"

type implWriter struct {
	dir      string
	basename string
	logger   logger.Logger
}

// New creates a Writer producing <dir>/<basename>.txt or .docx
func New(dir, basename string, log logger.Logger) Writer {
	if dir == "" {
		dir = "."
	}
	if basename == "" {
		basename = DefaultBasename
	}
	return &implWriter{
		dir:      dir,
		basename: basename,
		logger:   log,
	}
}
