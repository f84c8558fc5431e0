package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// Fetch downloads url into dest, overwriting any previous file there
func (f *implFetcher) Fetch(ctx context.Context, url, dest string, onProgress ProgressFunc) (models.MediaAsset, error) {
	videoID, ok := ExtractVideoID(url)
	if !ok {
		return models.MediaAsset{}, fmt.Errorf("%w: no YouTube video id in %q", models.ErrDownload, url)
	}

	if err := f.checkBinary(ctx); err != nil {
		return models.MediaAsset{}, err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return models.MediaAsset{}, fmt.Errorf("%w: create download dir: %w", models.ErrDownload, err)
	}

	if err := os.Remove(dest); err == nil {
		f.logger.Info(ctx, "Deleting existing video file: %s", dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return models.MediaAsset{}, fmt.Errorf("%w: remove existing file: %w", models.ErrDownload, err)
	}

	f.logger.Info(ctx, "Downloading video %s: %s", videoID, url)

	var (
		asset   models.MediaAsset
		gotMeta bool
	)
	onLine := func(line string) {
		if ev, ok := parseProgressLine(line); ok {
			if onProgress != nil {
				onProgress(ev)
			}
			return
		}
		if m, ok := parseMetaLine(line); ok {
			asset = m
			gotMeta = true
			return
		}
		f.logger.Debug(ctx, "yt-dlp: %s", line)
	}

	if err := f.executor.Stream(ctx, onLine, f.binary, f.buildArgs(url, dest)...); err != nil {
		if ctx.Err() != nil {
			return models.MediaAsset{}, ctx.Err()
		}
		return models.MediaAsset{}, fmt.Errorf("%w: %w", models.ErrDownload, err)
	}

	if !gotMeta || asset.LocalPath == "" {
		asset.LocalPath = dest
	}

	if _, err := os.Stat(asset.LocalPath); err != nil {
		return models.MediaAsset{}, fmt.Errorf("%w: downloaded file not found: %w", models.ErrDownload, err)
	}

	f.logger.Info(ctx, "Video downloaded: %s", asset.Title)
	f.logger.Info(ctx, "File saved as: %s", asset.LocalPath)
	return asset, nil
}

// checkBinary makes sure the downloader can be started before touching dest
func (f *implFetcher) checkBinary(ctx context.Context) error {
	version, err := f.executor.Execute(ctx, f.binary, "--version")
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s is not available: %w", models.ErrDownload, f.binary, err)
	}
	f.logger.Debug(ctx, "Using %s %s", f.binary, strings.TrimSpace(version))
	return nil
}

func (f *implFetcher) buildArgs(url, dest string) []string {
	return []string{
		url,
		"-f", f.format,
		"-o", dest,
		"--no-playlist",
		"--force-overwrites",
		"--merge-output-format", "mp4",
		"--newline",
		"--progress",
		"--progress-template", progressTemplate,
		"--print", metaTemplate,
	}
}
