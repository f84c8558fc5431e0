package models

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrDownload         = errors.New("download failed")
	ErrDurationExceeded = errors.New("video too long")
	ErrUpload           = errors.New("upload failed")
	ErrProcessingFailed = errors.New("file processing failed")
	ErrInference        = errors.New("inference failed")
)
