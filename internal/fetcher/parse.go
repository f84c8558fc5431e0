package fetcher

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

const (
	progressPrefix = "progress|"
	metaPrefix     = "meta|"
	fieldSep       = "|"

	progressTemplate = "download:" + progressPrefix +
		"%(progress.status)s|%(progress.filename)s|%(progress.eta)s|%(progress.downloaded_bytes)s|%(progress.total_bytes)s"
	metaTemplate = "after_move:" + metaPrefix + "%(duration)s|%(title)s|%(filepath)s"
)

var reVideoID = regexp.MustCompile(`(?:v=|/)([A-Za-z0-9_-]{11})`)

// ExtractVideoID returns the 11-character YouTube id found in url
func ExtractVideoID(url string) (string, bool) {
	m := reVideoID.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// parseProgressLine decodes a line produced by progressTemplate.
// yt-dlp prints "NA" for unknown fields.
func parseProgressLine(line string) (models.ProgressEvent, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, progressPrefix) {
		return models.ProgressEvent{}, false
	}

	fields := strings.Split(strings.TrimPrefix(line, progressPrefix), fieldSep)
	if len(fields) != 5 {
		return models.ProgressEvent{}, false
	}

	return models.ProgressEvent{
		Status:          naString(fields[0]),
		Filename:        naString(fields[1]),
		ETASeconds:      naInt(fields[2]),
		DownloadedBytes: naInt(fields[3]),
		TotalBytes:      naInt(fields[4]),
	}, true
}

// parseMetaLine decodes a line produced by metaTemplate. The title may contain
// the separator, so the duration is taken from the front and the path from the back.
func parseMetaLine(line string) (models.MediaAsset, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, metaPrefix) {
		return models.MediaAsset{}, false
	}

	rest := strings.TrimPrefix(line, metaPrefix)
	first := strings.Index(rest, fieldSep)
	last := strings.LastIndex(rest, fieldSep)
	if first < 0 || first == last {
		return models.MediaAsset{}, false
	}

	asset := models.MediaAsset{
		Title:     naString(rest[first+1 : last]),
		LocalPath: naString(rest[last+1:]),
	}
	if d, err := strconv.ParseFloat(rest[:first], 64); err == nil {
		asset.DurationSeconds = &d
	}
	return asset, true
}

func naString(s string) string {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return ""
	}
	return s
}

func naInt(s string) *int64 {
	s = naString(s)
	if s == "" {
		return nil
	}
	// eta and byte counts may be printed as floats
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int64(f)
	return &n
}
