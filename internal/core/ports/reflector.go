package ports

import "context"

// DiaryReflector produces a short supportive reply to a diary entry.
// Empty content must be rejected with domain.ErrEmptyContent before any
// outbound call.
type DiaryReflector interface {
	Reflect(ctx context.Context, content string) (string, error)
}
