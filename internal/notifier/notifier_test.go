package notifier

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

func int64p(n int64) *int64 { return &n }

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name string
		ev   models.ProgressEvent
		want string
	}{
		{
			name: "all fields",
			ev:   models.ProgressEvent{Status: "downloading", Filename: "v.mp4", ETASeconds: int64p(7), DownloadedBytes: int64p(1024)},
			want: "Status: downloading - Downloading: v.mp4 - ETA: 7 seconds - Downloaded: 1024 bytes",
		},
		{
			name: "status only",
			ev:   models.ProgressEvent{Status: "finished"},
			want: "Status: finished",
		},
		{
			name: "empty",
			ev:   models.ProgressEvent{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatProgress(tt.ev); got != tt.want {
				t.Errorf("FormatProgress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminalNotifier(t *testing.T) {
	ctx := context.Background()
	var logs, bar bytes.Buffer
	n := NewTerminal(&bar, logger.NewWithWriter("debug", &logs))

	n.LogLine(ctx, "Validating URL...")
	n.Progress(ctx, models.ProgressEvent{Status: "downloading", Filename: "v.mp4", DownloadedBytes: int64p(10), TotalBytes: int64p(100)})
	n.Progress(ctx, models.ProgressEvent{Status: "finished", DownloadedBytes: int64p(100), TotalBytes: int64p(100)})
	n.Done()

	if !strings.Contains(logs.String(), "Validating URL...") {
		t.Errorf("log line missing: %q", logs.String())
	}
	if !strings.Contains(logs.String(), "Status: downloading - Downloading: v.mp4") {
		t.Errorf("progress line missing: %q", logs.String())
	}
}

func TestPrompterURL(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n  \nhttps://youtu.be/abc12345678\n"), &out)

	got, err := p.URL()
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if got != "https://youtu.be/abc12345678" {
		t.Errorf("URL() = %q", got)
	}
	if strings.Count(out.String(), "Please enter a valid YouTube URL.") != 2 {
		t.Errorf("expected two re-prompts, output: %q", out.String())
	}
}

func TestPrompterQuestionCount(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n0\n7"), &out)

	got, err := p.QuestionCount()
	if err != nil {
		t.Fatalf("QuestionCount() error = %v", err)
	}
	if got != 7 {
		t.Errorf("QuestionCount() = %d, want 7", got)
	}
}

func TestPrompterQuestionCountEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("nope\n"), io.Discard)
	if _, err := p.QuestionCount(); !errors.Is(err, io.EOF) {
		t.Errorf("QuestionCount() error = %v, want io.EOF", err)
	}
}

func TestPrompterConfirmPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"\n", true},
		{"n\n", false},
		{"maybe\nno\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			got, err := NewPrompter(strings.NewReader(tt.input), io.Discard).ConfirmPlainText()
			if err != nil {
				t.Fatalf("ConfirmPlainText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConfirmPlainText() = %v, want %v", got, tt.want)
			}
		})
	}
}
