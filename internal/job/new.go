package job

import (
	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/internal/pipeline"
)

// Paths are the directories a Runner writes to
type Paths struct {
	Output   string
	Archived string
}

type implRunner struct {
	pipeline pipeline.Pipeline
	paths    Paths
	defaults Defaults
	logger   logger.Logger
}

// New creates a new Runner instance
func New(p pipeline.Pipeline, paths Paths, def Defaults, log logger.Logger) Runner {
	if def.Questions <= 0 {
		def.Questions = 10
	}
	if def.Format == "" {
		def.Format = "txt"
	}
	return &implRunner{
		pipeline: p,
		paths:    paths,
		defaults: def,
		logger:   log,
	}
}
