package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"moodlog/internal/common"
	"moodlog/internal/logging"
	"moodlog/internal/models"
	"moodlog/internal/repositories/kv"
)

// EntryInput carries everything addEntry needs: the five ratings, optional
// notes, the medication selection and the optional morning-log values.
type EntryInput struct {
	Anxiety       int
	Irritability  int
	DepressedMood int
	ElevatedMood  int
	Energy        int
	Notes         string
	MedicationIDs []string
	Sleep         *float64
	Weight        *float64
}

// EntryService is the entry store. It exclusively owns the MoodEntry
// collection for the process lifetime, keeps it sorted descending by
// timestamp and mirrors it into storage after every mutation. Entries are
// immutable once written; there is no delete or edit.
type EntryService struct {
	storage kv.Storage
	meds    *MedicationService
	clock   clockwork.Clock
	log     logging.Logger

	mu      sync.Mutex
	entries []models.MoodEntry // newest first
	lastID  int64
}

func NewEntryService(storage kv.Storage, meds *MedicationService, clock clockwork.Clock, log logging.Logger) *EntryService {
	return &EntryService{
		storage: storage,
		meds:    meds,
		clock:   clock,
		log:     log.With("component", "entries"),
	}
}

// Load rehydrates the collection once at startup. Failures leave the store
// at its empty default and are logged, never fatal.
func (s *EntryService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.storage.Load(ctx, kv.KeyEntries)
	if err != nil {
		s.log.Warn(ctx, "failed to load entries, starting empty", "error", err)
		return
	}
	if blob == nil {
		return
	}
	var entries []models.MoodEntry
	if err := json.Unmarshal(blob, &entries); err != nil {
		s.log.Warn(ctx, "failed to decode entries, starting empty", "error", err)
		return
	}
	s.entries = entries
	s.sortDesc()
	for _, e := range s.entries {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
}

// IsFirstEntryToday reports whether no stored entry belongs to the current
// calendar day. Evaluated against the clock at call time, never cached.
func (s *EntryService) IsFirstEntryToday() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isFirstForDate(s.clock.Now().Format(models.DateLayout))
}

// Add validates the input, builds the record from the current clock instant
// and inserts it. Validation failures reject the call with no partial
// mutation. On success the collection is re-sorted newest first, persisted,
// and the medication selection is cleared.
func (s *EntryService) Add(ctx context.Context, in EntryInput) (*models.MoodEntry, error) {
	if in.Sleep != nil && (*in.Sleep < 0 || *in.Sleep > 24) {
		return nil, common.ErrSleepOutOfRange
	}
	if in.Weight != nil && *in.Weight < 0 {
		return nil, common.ErrNegativeWeight
	}

	// Resolve before taking the entry lock; unknown ids drop silently.
	medNames := s.meds.ResolveNames(in.MedicationIDs)

	s.mu.Lock()

	now := s.clock.Now()
	e := models.MoodEntry{
		ID:            s.nextID(now.UnixMilli()),
		Date:          now.Format(models.DateLayout),
		Time:          now.Format(models.TimeLayout),
		Timestamp:     now,
		Anxiety:       in.Anxiety,
		Irritability:  in.Irritability,
		DepressedMood: in.DepressedMood,
		ElevatedMood:  in.ElevatedMood,
		Energy:        in.Energy,
		Notes:         strings.TrimSpace(in.Notes),
		Medications:   medNames,
	}

	// Morning log attaches only to the day's first entry; values supplied
	// for any later entry are discarded, not stored.
	if s.isFirstForDate(e.Date) {
		e.Sleep = in.Sleep
		e.Weight = in.Weight
	}

	s.entries = append(s.entries, e)
	s.sortDesc()
	s.persist(ctx)
	s.mu.Unlock()

	s.meds.ClearSelection()
	s.log.Info(ctx, "entry saved", "id", e.ID, "date", e.Date, "time", e.Time)
	return &e, nil
}

// EntriesForDate returns the entries of one calendar day, ascending by
// time of day.
func (s *EntryService) EntriesForDate(date string) []models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.MoodEntry
	for _, e := range s.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// DatesWithEntries returns the distinct dates present, most recent first.
func (s *EntryService) DatesWithEntries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	var dates []string
	for _, e := range s.entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// All returns a copy of the full collection, newest first.
func (s *EntryService) All() []models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MoodEntry(nil), s.entries...)
}

func (s *EntryService) isFirstForDate(date string) bool {
	for _, e := range s.entries {
		if e.Date == date {
			return false
		}
	}
	return true
}

// nextID issues creation tokens that stay strictly monotonic even when two
// entries land within the same millisecond.
func (s *EntryService) nextID(candidate int64) int64 {
	if candidate <= s.lastID {
		candidate = s.lastID + 1
	}
	s.lastID = candidate
	return candidate
}

func (s *EntryService) sortDesc() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Timestamp.After(s.entries[j].Timestamp)
	})
}

func (s *EntryService) persist(ctx context.Context) {
	blob, err := json.Marshal(s.entries)
	if err != nil {
		s.log.Error(ctx, "failed to encode entries", "error", err)
		return
	}
	if err := s.storage.Save(ctx, kv.KeyEntries, blob); err != nil {
		s.log.Warn(ctx, "failed to save entries", "error", err)
	}
}
