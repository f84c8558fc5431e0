package uploader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/nguyentantai21042004/video-quiz/internal/models"
)

// errNotReady keeps the retry loop going while the file is still processing
var errNotReady = errors.New("file not ready")

// Upload pushes localPath and polls until the file is ACTIVE or FAILED
func (u *implUploader) Upload(ctx context.Context, localPath string) (models.RemoteAsset, error) {
	u.logger.Info(ctx, "Uploading video file %s to Gemini...", localPath)

	asset, err := u.store.UploadFile(ctx, localPath)
	if err != nil {
		if ctx.Err() != nil {
			return models.RemoteAsset{}, ctx.Err()
		}
		return models.RemoteAsset{}, fmt.Errorf("%w: %w", models.ErrUpload, err)
	}
	u.logger.Info(ctx, "Completed upload: %s", asset.URI)

	asset, err = u.waitReady(ctx, asset)
	if err != nil {
		return models.RemoteAsset{}, err
	}

	u.logger.Info(ctx, "File ready for analysis: %s", asset.Name)
	return asset, nil
}

// waitReady drives the PROCESSING -> ACTIVE | FAILED state machine.
// The state returned by the upload is checked first; every later check waits one interval and re-fetches.
func (u *implUploader) waitReady(ctx context.Context, asset models.RemoteAsset) (models.RemoteAsset, error) {
	if err := readiness(asset); !errors.Is(err, errNotReady) {
		if err != nil {
			return models.RemoteAsset{}, err
		}
		return asset, nil
	}

	pollCtx := ctx
	if u.policy.Timeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, u.policy.Timeout)
		defer cancel()
	}

	poll := func() (models.RemoteAsset, error) {
		next, err := u.store.GetFile(pollCtx, asset.Name)
		if err != nil {
			if pollCtx.Err() != nil {
				return models.RemoteAsset{}, backoff.Permanent(pollCtx.Err())
			}
			return models.RemoteAsset{}, backoff.Permanent(fmt.Errorf("%w: poll %s: %w", models.ErrUpload, asset.Name, err))
		}
		if err := readiness(next); err != nil {
			if errors.Is(err, errNotReady) {
				return models.RemoteAsset{}, err
			}
			return models.RemoteAsset{}, backoff.Permanent(err)
		}
		return next, nil
	}

	// The first attempt must wait too, so the loop starts by reporting the upload state as not ready.
	first := true
	op := func() (models.RemoteAsset, error) {
		if first {
			first = false
			return models.RemoteAsset{}, errNotReady
		}
		return poll()
	}

	ready, err := backoff.Retry(pollCtx, op,
		backoff.WithBackOff(backoff.NewConstantBackOff(u.policy.Interval)),
		backoff.WithMaxElapsedTime(u.policy.Timeout),
		backoff.WithNotify(func(err error, wait time.Duration) {
			u.logger.Info(ctx, "Processing video, please wait...")
			if u.notify != nil {
				u.notify(err, wait)
			}
		}),
	)
	if err != nil {
		if errors.Is(err, errNotReady) {
			err = context.DeadlineExceeded
		}
		return models.RemoteAsset{}, u.abortErr(ctx, asset, err)
	}
	return ready, nil
}

// readiness maps a remote state to nil (ACTIVE), errNotReady or ErrProcessingFailed
func readiness(asset models.RemoteAsset) error {
	switch asset.State {
	case models.AssetStateActive:
		return nil
	case models.AssetStateFailed:
		return fmt.Errorf("%w: %s", models.ErrProcessingFailed, asset.Name)
	default:
		return errNotReady
	}
}

// abortErr returns the caller's cancellation as-is and reports a poll timeout as an upload error
func (u *implUploader) abortErr(ctx context.Context, asset models.RemoteAsset, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s not ready after %s: %w", models.ErrUpload, asset.Name, u.policy.Timeout, err)
	}
	return err
}
