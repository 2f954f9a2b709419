package notify

import (
	"context"
	"log"
)

// LogNotifier implements the Notifier interface by logging messages to stdout.
// Used when no email credentials are configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Publish(ctx context.Context, subject, message string) error {
	log.Printf("📨 [Notify] %s: %s", subject, message)
	return nil
}
