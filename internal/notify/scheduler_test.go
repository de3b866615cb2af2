package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlog/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestScheduler_Reschedule(t *testing.T) {
	s, err := NewScheduler(testLogger(), func(string) {})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })

	ctx := context.Background()

	require.NoError(t, s.Reschedule(ctx, []string{"09:00", "14:00", "19:00"}))
	assert.Equal(t, 3, s.JobCount())

	// replacing the set drops the old jobs
	require.NoError(t, s.Reschedule(ctx, []string{"08:30"}))
	assert.Equal(t, 1, s.JobCount())
}

func TestScheduler_SkipsUnparsableTimes(t *testing.T) {
	s, err := NewScheduler(testLogger(), func(string) {})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })

	require.NoError(t, s.Reschedule(context.Background(), []string{"09:00", "nonsense"}))
	assert.Equal(t, 1, s.JobCount())
}

func TestLogNotifier_SyncTag(t *testing.T) {
	n := NewLogNotifier(testLogger())
	assert.NoError(t, n.SyncTag(context.Background(), "09:00,14:00"))
}
