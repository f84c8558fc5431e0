package uploader

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/nguyentantai21042004/video-quiz/internal/logger"
	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

type fakeStore struct {
	uploadState models.AssetState
	uploadErr   error
	states      []models.AssetState
	getErr      error
	getCalls    int
}

func (s *fakeStore) UploadFile(ctx context.Context, path string) (models.RemoteAsset, error) {
	if s.uploadErr != nil {
		return models.RemoteAsset{}, s.uploadErr
	}
	return models.RemoteAsset{Name: "files/abc", URI: "https://example/files/abc", State: s.uploadState}, nil
}

func (s *fakeStore) GetFile(ctx context.Context, name string) (models.RemoteAsset, error) {
	s.getCalls++
	if s.getErr != nil {
		return models.RemoteAsset{}, s.getErr
	}
	state := s.states[0]
	if len(s.states) > 1 {
		s.states = s.states[1:]
	}
	return models.RemoteAsset{Name: name, URI: "https://example/" + name, State: state}, nil
}

type recordingNotify struct {
	waits []time.Duration
}

func (r *recordingNotify) notify(err error, d time.Duration) {
	r.waits = append(r.waits, d)
}

func newTestUploader(store FileStore, policy Policy, notify func(error, time.Duration)) Uploader {
	return New(store, policy, logger.NewWithWriter("error", io.Discard), WithNotify(notify))
}

func TestNewDefaultInterval(t *testing.T) {
	u := New(&fakeStore{}, Policy{}, logger.NewWithWriter("error", io.Discard)).(*implUploader)
	if u.policy.Interval != DefaultInterval {
		t.Errorf("Interval = %v, want %v", u.policy.Interval, DefaultInterval)
	}
	if u.policy.Timeout != 0 {
		t.Errorf("Timeout = %v, want unbounded", u.policy.Timeout)
	}
}

func TestUploadPollsUntilActive(t *testing.T) {
	store := &fakeStore{
		uploadState: models.AssetStateProcessing,
		states:      []models.AssetState{models.AssetStateProcessing, models.AssetStateActive},
	}
	rec := &recordingNotify{}

	asset, err := newTestUploader(store, Policy{Interval: time.Millisecond}, rec.notify).Upload(context.Background(), "video.mp4")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if asset.State != models.AssetStateActive {
		t.Errorf("State = %v, want ACTIVE", asset.State)
	}
	if store.getCalls != 2 {
		t.Errorf("GetFile calls = %d, want 2", store.getCalls)
	}
	if len(rec.waits) != 2 {
		t.Errorf("waits = %d, want 2", len(rec.waits))
	}
	for _, d := range rec.waits {
		if d != time.Millisecond {
			t.Errorf("wait = %v, want 1ms", d)
		}
	}
}

func TestUploadProcessingFailed(t *testing.T) {
	store := &fakeStore{
		uploadState: models.AssetStateProcessing,
		states:      []models.AssetState{models.AssetStateFailed},
	}
	rec := &recordingNotify{}

	_, err := newTestUploader(store, Policy{Interval: time.Millisecond}, rec.notify).Upload(context.Background(), "video.mp4")
	if !errors.Is(err, models.ErrProcessingFailed) {
		t.Fatalf("Upload() error = %v, want ErrProcessingFailed", err)
	}
	if store.getCalls != 1 {
		t.Errorf("GetFile calls = %d, want 1", store.getCalls)
	}
	if len(rec.waits) != 1 {
		t.Errorf("waits = %d, want 1", len(rec.waits))
	}
}

func TestUploadAlreadyActive(t *testing.T) {
	store := &fakeStore{uploadState: models.AssetStateActive}
	rec := &recordingNotify{}

	if _, err := newTestUploader(store, Policy{}, rec.notify).Upload(context.Background(), "video.mp4"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if store.getCalls != 0 || len(rec.waits) != 0 {
		t.Errorf("expected no polling, got %d gets and %d waits", store.getCalls, len(rec.waits))
	}
}

func TestUploadUnspecifiedStateKeepsPolling(t *testing.T) {
	store := &fakeStore{
		uploadState: models.AssetStateUnspecified,
		states:      []models.AssetState{models.AssetStateUnspecified, models.AssetStateActive},
	}
	rec := &recordingNotify{}

	if _, err := newTestUploader(store, Policy{Interval: time.Millisecond}, rec.notify).Upload(context.Background(), "video.mp4"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if store.getCalls != 2 {
		t.Errorf("GetFile calls = %d, want 2", store.getCalls)
	}
}

func TestUploadTransportErrors(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{"upload fails", &fakeStore{uploadErr: errors.New("connection reset")}},
		{"poll fails", &fakeStore{uploadState: models.AssetStateProcessing, getErr: errors.New("503")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingNotify{}
			_, err := newTestUploader(tt.store, Policy{Interval: time.Millisecond}, rec.notify).Upload(context.Background(), "video.mp4")
			if !errors.Is(err, models.ErrUpload) {
				t.Errorf("Upload() error = %v, want ErrUpload", err)
			}
		})
	}
}

func TestUploadCancelled(t *testing.T) {
	store := &fakeStore{
		uploadState: models.AssetStateProcessing,
		states:      []models.AssetState{models.AssetStateProcessing},
	}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	notify := func(err error, d time.Duration) {
		calls++
		if calls == 3 {
			cancel()
		}
	}

	_, err := newTestUploader(store, Policy{Interval: 20 * time.Millisecond}, notify).Upload(ctx, "video.mp4")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Upload() error = %v, want context.Canceled", err)
	}
	if store.getCalls != 2 {
		t.Errorf("GetFile calls = %d, want 2", store.getCalls)
	}
}

func TestUploadTimeout(t *testing.T) {
	store := &fakeStore{
		uploadState: models.AssetStateProcessing,
		states:      []models.AssetState{models.AssetStateProcessing},
	}

	policy := Policy{Interval: time.Millisecond, Timeout: 20 * time.Millisecond}
	_, err := New(store, policy, logger.NewWithWriter("error", io.Discard)).Upload(context.Background(), "video.mp4")
	if !errors.Is(err, models.ErrUpload) {
		t.Fatalf("Upload() error = %v, want ErrUpload", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Upload() error = %v, want wrapped DeadlineExceeded", err)
	}
}

func TestUploadTimeoutDuringSlowPoll(t *testing.T) {
	store := &blockingStore{}
	policy := Policy{Interval: time.Millisecond, Timeout: 20 * time.Millisecond}

	_, err := New(store, policy, logger.NewWithWriter("error", io.Discard)).Upload(context.Background(), "video.mp4")
	if !errors.Is(err, models.ErrUpload) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Upload() error = %v, want ErrUpload wrapping DeadlineExceeded", err)
	}
}

// blockingStore hangs on GetFile until the poll deadline passes
type blockingStore struct{}

func (blockingStore) UploadFile(ctx context.Context, path string) (models.RemoteAsset, error) {
	return models.RemoteAsset{Name: "files/slow", State: models.AssetStateProcessing}, nil
}

func (blockingStore) GetFile(ctx context.Context, name string) (models.RemoteAsset, error) {
	<-ctx.Done()
	return models.RemoteAsset{}, ctx.Err()
}
