package uploader

import (
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/nguyentantai21042004/video-quiz/internal/logger"
)

// DefaultInterval is the wait between readiness checks
const DefaultInterval = 10 * time.Second

// Policy controls readiness polling. A zero Timeout waits until a terminal state.
type Policy struct {
	Interval time.Duration
	Timeout  time.Duration
}

type implUploader struct {
	store  FileStore
	policy Policy
	notify backoff.Notify
	logger logger.Logger
}

// Option customises an Uploader
type Option func(*implUploader)

// WithNotify registers fn to be called before every wait between readiness checks
func WithNotify(fn backoff.Notify) Option {
	return func(u *implUploader) {
		u.notify = fn
	}
}

// New creates a new Uploader instance
func New(store FileStore, policy Policy, log logger.Logger, opts ...Option) Uploader {
	if policy.Interval <= 0 {
		policy.Interval = DefaultInterval
	}

	u := &implUploader{
		store:  store,
		policy: policy,
		logger: log,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
