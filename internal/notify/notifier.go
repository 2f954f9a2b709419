package notify

import "context"

// Notifier defines the interface for telling the board owner about new
// feedback. This abstraction allows swapping the log notifier with a real
// delivery channel without refactoring.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}
