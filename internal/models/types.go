package models

import (
	"fmt"
	"strings"
)

// MediaAsset is a video file fetched to local disk.
type MediaAsset struct {
	LocalPath string
	Title     string
	// DurationSeconds is nil when the source did not report a duration.
	DurationSeconds *float64
}

// AssetState is the processing state of an uploaded file.
type AssetState string

const (
	AssetStateUnspecified AssetState = "STATE_UNSPECIFIED"
	AssetStateProcessing  AssetState = "PROCESSING"
	AssetStateActive      AssetState = "ACTIVE"
	AssetStateFailed      AssetState = "FAILED"
)

// Terminal reports whether no further state transition is expected.
func (s AssetState) Terminal() bool {
	return s == AssetStateActive || s == AssetStateFailed
}

// RemoteAsset is a file held by the inference service.
type RemoteAsset struct {
	Name     string
	URI      string
	MIMEType string
	State    AssetState
}

// QuizRequest describes one quiz generation run.
type QuizRequest struct {
	VideoURL      string
	QuestionCount int
}

// Validate checks the request before any work is done
func (r QuizRequest) Validate() error {
	if strings.TrimSpace(r.VideoURL) == "" {
		return fmt.Errorf("%w: video url is required", ErrInvalidRequest)
	}
	if r.QuestionCount <= 0 {
		return fmt.Errorf("%w: question count must be positive, got %d", ErrInvalidRequest, r.QuestionCount)
	}
	return nil
}

// QuizResult is the text returned by the model.
type QuizResult struct {
	Text string
}

// ProgressEvent is a download progress report. Every field is optional.
type ProgressEvent struct {
	Status          string
	Filename        string
	ETASeconds      *int64
	DownloadedBytes *int64
	TotalBytes      *int64
}

// Format selects how a result is persisted.
type Format int

const (
	PlainText Format = iota
	RichDocument
)

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == RichDocument {
		return ".docx"
	}
	return ".txt"
}

func (f Format) String() string {
	if f == RichDocument {
		return "docx"
	}
	return "txt"
}

// ParseFormat accepts "txt"/"text" and "docx"/"doc".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "txt", "text":
		return PlainText, nil
	case "docx", "doc":
		return RichDocument, nil
	default:
		return PlainText, fmt.Errorf("unknown output format %q", s)
	}
}
