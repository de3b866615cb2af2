package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlog/internal/common"
	"moodlog/internal/repositories/kv"
)

type fakeNotifier struct {
	tags []string
	err  error
}

func (f *fakeNotifier) SyncTag(ctx context.Context, tag string) error {
	f.tags = append(f.tags, tag)
	return f.err
}

func setupReminderService(t *testing.T) (*ReminderService, *fakeNotifier, kv.Storage) {
	t.Helper()
	storage := setupStorage(t)
	notifier := &fakeNotifier{}
	return NewReminderService(storage, notifier, testLogger()), notifier, storage
}

func TestReminderDefaults(t *testing.T) {
	s, _, _ := setupReminderService(t)

	assert.Equal(t, []string{"09:00", "14:00", "19:00"}, s.Times())
	assert.False(t, s.Enabled())
	assert.Equal(t, "09:00,14:00,19:00", s.Tag())
}

func TestReminderAdd_SortedAndDeduped(t *testing.T) {
	s, _, _ := setupReminderService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "07:15"))
	assert.Equal(t, []string{"07:15", "09:00", "14:00", "19:00"}, s.Times())

	// duplicate is silently ignored
	require.NoError(t, s.Add(ctx, "09:00"))
	assert.Len(t, s.Times(), 4)
}

func TestReminderAdd_RejectsMalformedTimes(t *testing.T) {
	s, _, _ := setupReminderService(t)
	ctx := context.Background()

	for _, bad := range []string{"9:00", "24:00", "12:60", "noon", "12:5"} {
		assert.ErrorIs(t, s.Add(ctx, bad), common.ErrInvalidReminderTime, "time %q", bad)
	}
	assert.Len(t, s.Times(), 3)
}

func TestReminderRemove(t *testing.T) {
	s, _, _ := setupReminderService(t)
	ctx := context.Background()

	s.Remove(ctx, "14:00")
	assert.Equal(t, []string{"09:00", "19:00"}, s.Times())

	// absent time is a no-op
	s.Remove(ctx, "23:59")
	assert.Len(t, s.Times(), 2)
}

func TestReminderTagSync_OnlyWhenEnabled(t *testing.T) {
	s, notifier, _ := setupReminderService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "07:00"))
	assert.Empty(t, notifier.tags, "disabled reminders must not sync")

	s.SetEnabled(ctx, true)
	require.Equal(t, []string{"07:00,09:00,14:00,19:00"}, notifier.tags)

	s.Remove(ctx, "14:00")
	assert.Equal(t, "07:00,09:00,19:00", notifier.tags[len(notifier.tags)-1])
}

func TestReminderLoad_RoundTrip(t *testing.T) {
	s, notifier, storage := setupReminderService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "06:45"))
	s.SetEnabled(ctx, true)

	fresh := NewReminderService(storage, notifier, testLogger())
	fresh.Load(ctx)
	assert.Equal(t, s.Times(), fresh.Times())
	assert.True(t, fresh.Enabled())
}
