package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/internal/models"
	"github.com/schollz/progressbar/v3"
)

type implTerminal struct {
	mu     sync.Mutex
	out    io.Writer
	logger logger.Logger
	bar    *progressbar.ProgressBar
}

// NewTerminal creates a Notifier that logs through log and draws download progress on out
func NewTerminal(out io.Writer, log logger.Logger) Notifier {
	return &implTerminal{
		out:    out,
		logger: log,
	}
}

func (n *implTerminal) LogLine(ctx context.Context, text string) {
	n.logger.Info(ctx, "%s", text)
}

func (n *implTerminal) Progress(ctx context.Context, ev models.ProgressEvent) {
	n.logger.Debug(ctx, "%s", FormatProgress(ev))

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.bar == nil {
		n.bar = progressbar.NewOptions64(-1,
			progressbar.OptionSetWriter(n.out),
			progressbar.OptionSetDescription("Downloading"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	if ev.TotalBytes != nil && *ev.TotalBytes > 0 && n.bar.GetMax64() != *ev.TotalBytes {
		n.bar.ChangeMax64(*ev.TotalBytes)
	}
	if ev.DownloadedBytes != nil {
		_ = n.bar.Set64(*ev.DownloadedBytes)
	}
	if ev.Filename != "" {
		n.bar.Describe(ev.Filename)
	}
	if ev.Status == "finished" {
		_ = n.bar.Finish()
		n.bar = nil
	}
}

func (n *implTerminal) Done() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.bar != nil {
		_ = n.bar.Finish()
		n.bar = nil
	}
}

// FormatProgress renders a progress event as a single status line
func FormatProgress(ev models.ProgressEvent) string {
	var parts []string
	if ev.Status != "" {
		parts = append(parts, "Status: "+ev.Status)
	}
	if ev.Filename != "" {
		parts = append(parts, "Downloading: "+ev.Filename)
	}
	if ev.ETASeconds != nil {
		parts = append(parts, fmt.Sprintf("ETA: %d seconds", *ev.ETASeconds))
	}
	if ev.DownloadedBytes != nil {
		parts = append(parts, fmt.Sprintf("Downloaded: %d bytes", *ev.DownloadedBytes))
	}
	return strings.Join(parts, " - ")
}
