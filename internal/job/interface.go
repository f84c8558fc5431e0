package job

import "context"

// Runner processes one request file end to end
type Runner interface {
	Handle(ctx context.Context, requestPath string) error
}
