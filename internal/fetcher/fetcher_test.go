package fetcher

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/internal/models"
	"github.com/nguyentantai21042004/video-quiz/pkg/executor"
)

type fakeExecutor struct {
	lines      []string
	err        error
	versionErr error
	create     bool
	gotArgs    []string
	execArgs   []string
	streamed   bool
}

func (e *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	e.execArgs = args
	if e.versionErr != nil {
		return "", e.versionErr
	}
	return "2024.08.06\n", nil
}

func (e *fakeExecutor) Stream(ctx context.Context, onLine executor.LineFunc, name string, args ...string) error {
	e.gotArgs = args
	e.streamed = true
	for _, l := range e.lines {
		onLine(l)
	}
	if e.err != nil {
		return e.err
	}
	if e.create {
		dest := args[indexOf(args, "-o")+1]
		return os.WriteFile(dest, []byte("video"), 0644)
	}
	return nil
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}

func newTestFetcher(exec executor.Executor) Fetcher {
	return New("yt-dlp", "best", exec, logger.NewWithWriter("error", io.Discard))
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=OGR9vTOgRJ4", "OGR9vTOgRJ4", true},
		{"https://youtube.com/watch?v=abc12345678", "abc12345678", true},
		{"https://youtu.be/abc12345678", "abc12345678", true},
		{"https://www.youtube.com/shorts/abc_-345678?feature=share", "abc_-345678", true},
		{"https://example.com/", "", false},
		{"not a url", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, %v, want %q, %v", tt.url, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseProgressLine(t *testing.T) {
	ev, ok := parseProgressLine("progress|downloading|video.mp4|12|2048|NA")
	if !ok {
		t.Fatal("parseProgressLine() should accept a progress line")
	}
	if ev.Status != "downloading" || ev.Filename != "video.mp4" {
		t.Errorf("unexpected event %+v", ev)
	}
	if ev.ETASeconds == nil || *ev.ETASeconds != 12 {
		t.Errorf("ETASeconds = %v, want 12", ev.ETASeconds)
	}
	if ev.DownloadedBytes == nil || *ev.DownloadedBytes != 2048 {
		t.Errorf("DownloadedBytes = %v, want 2048", ev.DownloadedBytes)
	}
	if ev.TotalBytes != nil {
		t.Errorf("TotalBytes = %v, want nil for NA", *ev.TotalBytes)
	}

	if _, ok := parseProgressLine("[download] 10% of 5MiB"); ok {
		t.Error("parseProgressLine() should ignore ordinary output")
	}
	if _, ok := parseProgressLine("progress|too|few"); ok {
		t.Error("parseProgressLine() should reject malformed lines")
	}
}

func TestParseMetaLine(t *testing.T) {
	asset, ok := parseMetaLine("meta|612.5|Go | Concurrency talk|/tmp/out.mp4")
	if !ok {
		t.Fatal("parseMetaLine() should accept a meta line")
	}
	if asset.DurationSeconds == nil || *asset.DurationSeconds != 612.5 {
		t.Errorf("DurationSeconds = %v, want 612.5", asset.DurationSeconds)
	}
	if asset.Title != "Go | Concurrency talk" {
		t.Errorf("Title = %q", asset.Title)
	}
	if asset.LocalPath != "/tmp/out.mp4" {
		t.Errorf("LocalPath = %q", asset.LocalPath)
	}

	asset, ok = parseMetaLine("meta|NA|Live|/tmp/live.mp4")
	if !ok || asset.DurationSeconds != nil {
		t.Errorf("NA duration should be absent, got %+v", asset)
	}
}

func TestFetch(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "downloads", "video.mp4")
	exec := &fakeExecutor{
		create: true,
		lines: []string{
			"progress|downloading|video.mp4|5|100|1000",
			"[Merger] Merging formats",
			"progress|finished|video.mp4|NA|1000|1000",
			"meta|600|Sample|" + dest,
		},
	}

	var events []models.ProgressEvent
	asset, err := newTestFetcher(exec).Fetch(context.Background(), "https://youtube.com/watch?v=abc12345678", dest, func(ev models.ProgressEvent) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if asset.LocalPath != dest {
		t.Errorf("LocalPath = %q, want %q", asset.LocalPath, dest)
	}
	if asset.DurationSeconds == nil || *asset.DurationSeconds != 600 {
		t.Errorf("DurationSeconds = %v, want 600", asset.DurationSeconds)
	}
	if len(events) != 2 {
		t.Errorf("got %d progress events, want 2", len(events))
	}
	if exec.gotArgs[0] != "https://youtube.com/watch?v=abc12345678" {
		t.Errorf("first arg = %q, want url", exec.gotArgs[0])
	}
}

func TestFetchRemovesExistingFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "video.mp4")
	if err := os.WriteFile(dest, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{create: true}
	if _, err := newTestFetcher(exec).Fetch(context.Background(), "https://youtu.be/abc12345678", dest, nil); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "video" {
		t.Errorf("file content = %q, want fresh download", data)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name string
		url  string
		exec *fakeExecutor
	}{
		{"invalid url", "https://example.com/nothing", &fakeExecutor{}},
		{"command failure", "https://youtu.be/abc12345678", &fakeExecutor{err: errors.New("exit status 1")}},
		{"binary missing", "https://youtu.be/abc12345678", &fakeExecutor{versionErr: errors.New("executable file not found in $PATH")}},
		{"missing output", "https://youtu.be/abc12345678", &fakeExecutor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "video.mp4")
			_, err := newTestFetcher(tt.exec).Fetch(context.Background(), tt.url, dest, nil)
			if !errors.Is(err, models.ErrDownload) {
				t.Errorf("Fetch() error = %v, want ErrDownload", err)
			}
		})
	}
}

func TestFetchChecksBinaryFirst(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "video.mp4")
	if err := os.WriteFile(dest, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	exec := &fakeExecutor{versionErr: errors.New("executable file not found in $PATH")}

	_, err := newTestFetcher(exec).Fetch(context.Background(), "https://youtu.be/abc12345678", dest, nil)
	if !errors.Is(err, models.ErrDownload) {
		t.Fatalf("Fetch() error = %v, want ErrDownload", err)
	}
	if strings.Join(exec.execArgs, " ") != "--version" {
		t.Errorf("Execute args = %v, want [--version]", exec.execArgs)
	}
	if exec.streamed {
		t.Error("download should not start when the binary is missing")
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("existing file should be left alone: %v", err)
	}
}

func TestBuildArgs(t *testing.T) {
	f := newTestFetcher(&fakeExecutor{}).(*implFetcher)
	args := strings.Join(f.buildArgs("https://youtu.be/abc12345678", "out.mp4"), " ")
	for _, want := range []string{"--no-playlist", "--newline", "-o out.mp4", "-f best", "after_move:meta|"} {
		if !strings.Contains(args, want) {
			t.Errorf("args %q missing %q", args, want)
		}
	}
}
