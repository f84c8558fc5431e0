package notifier

import (
	"context"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// Notifier surfaces pipeline activity to the user
type Notifier interface {
	LogLine(ctx context.Context, text string)
	Progress(ctx context.Context, ev models.ProgressEvent)
	Done()
}

// Prompter collects the inputs of an interactive run
type Prompter interface {
	URL() (string, error)
	QuestionCount() (int, error)
	ConfirmPlainText() (bool, error)
}
