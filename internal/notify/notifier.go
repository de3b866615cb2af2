// Package notify holds the notification collaborator boundary: the core
// pushes its reminder-time tag out through Notifier and never queries back.
package notify

import (
	"context"

	"moodlog/internal/logging"
)

// Notifier receives the current reminder tag (the reminder times joined by
// ",") whenever the reminder set changes while notifications are enabled.
// The collaborator owns scheduling and delivery.
type Notifier interface {
	SyncTag(ctx context.Context, tag string) error
}

// LogNotifier records tag syncs in the log. It stands in for a push
// provider when none is wired.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SyncTag(ctx context.Context, tag string) error {
	n.log.Info(ctx, "reminder tag synced", "reminder_times", tag)
	return nil
}
