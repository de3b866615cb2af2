package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"moodlog/internal/common"
	"moodlog/internal/logging"
	"moodlog/internal/models"
	"moodlog/internal/notify"
	"moodlog/internal/repositories/kv"
)

// TagDelimiter joins reminder times into the opaque tag handed to the
// notification collaborator.
const TagDelimiter = ","

// ReminderService owns the reminder configuration: the sorted,
// duplicate-free set of HH:MM times and the notifications-enabled flag.
// Whenever the set changes while notifications are enabled, the current tag
// is pushed to the notifier; the collaborator is never queried for state.
type ReminderService struct {
	storage  kv.Storage
	notifier notify.Notifier
	log      logging.Logger

	mu  sync.Mutex
	cfg models.ReminderConfig
}

func NewReminderService(storage kv.Storage, notifier notify.Notifier, log logging.Logger) *ReminderService {
	return &ReminderService{
		storage:  storage,
		notifier: notifier,
		log:      log.With("component", "reminders"),
		cfg:      models.ReminderConfig{Times: models.DefaultReminderTimes()},
	}
}

// Load rehydrates the configuration; failures keep the defaults.
func (s *ReminderService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.storage.Load(ctx, kv.KeyReminders)
	if err != nil {
		s.log.Warn(ctx, "failed to load reminder config, using defaults", "error", err)
		return
	}
	if blob == nil {
		return
	}
	var cfg models.ReminderConfig
	if err := json.Unmarshal(blob, &cfg); err != nil {
		s.log.Warn(ctx, "failed to decode reminder config, using defaults", "error", err)
		return
	}
	s.cfg = cfg
}

// Times returns the reminder set in ascending order.
func (s *ReminderService) Times() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cfg.Times...)
}

func (s *ReminderService) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Enabled
}

// Tag renders the reminder set as the collaborator's opaque tag string.
func (s *ReminderService) Tag() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tagLocked()
}

// Add inserts a zero-padded HH:MM time into the set. Duplicates are ignored
// silently; malformed times are rejected.
func (s *ReminderService) Add(ctx context.Context, tod string) error {
	if !validReminderTime(tod) {
		return common.ErrInvalidReminderTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.cfg.Times {
		if existing == tod {
			return nil
		}
	}
	s.cfg.Times = append(s.cfg.Times, tod)
	sort.Strings(s.cfg.Times)
	s.persist(ctx)
	s.syncTag(ctx)
	return nil
}

// Remove drops the time from the set; absent times are a no-op.
func (s *ReminderService) Remove(ctx context.Context, tod string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cfg.Times[:0]
	for _, existing := range s.cfg.Times {
		if existing != tod {
			kept = append(kept, existing)
		}
	}
	s.cfg.Times = kept
	s.persist(ctx)
	s.syncTag(ctx)
}

// SetEnabled flips the notifications flag. Enabling pushes the current tag.
func (s *ReminderService) SetEnabled(ctx context.Context, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Enabled = enabled
	s.persist(ctx)
	if enabled {
		s.syncTag(ctx)
	}
}

func (s *ReminderService) tagLocked() string {
	return strings.Join(s.cfg.Times, TagDelimiter)
}

func (s *ReminderService) syncTag(ctx context.Context) {
	if !s.cfg.Enabled || s.notifier == nil {
		return
	}
	if err := s.notifier.SyncTag(ctx, s.tagLocked()); err != nil {
		s.log.Warn(ctx, "failed to sync reminder tag", "error", err)
	}
}

func (s *ReminderService) persist(ctx context.Context) {
	blob, err := json.Marshal(s.cfg)
	if err != nil {
		s.log.Error(ctx, "failed to encode reminder config", "error", err)
		return
	}
	if err := s.storage.Save(ctx, kv.KeyReminders, blob); err != nil {
		s.log.Warn(ctx, "failed to save reminder config", "error", err)
	}
}

// validReminderTime accepts only zero-padded HH:MM so the stored strings
// sort chronologically.
func validReminderTime(tod string) bool {
	if len(tod) != 5 {
		return false
	}
	parsed, err := time.Parse("15:04", tod)
	if err != nil {
		return false
	}
	return parsed.Format("15:04") == tod
}
