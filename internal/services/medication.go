// Package services implements the moodlog core: the entry store, the
// medication registry, the aggregation engine, the export filter and the
// reminder configuration. All mutation funnels through these types so the
// invariants are enforced at one choke point; each mutation mirrors its
// collection into storage.
package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"moodlog/internal/common"
	"moodlog/internal/logging"
	"moodlog/internal/models"
	"moodlog/internal/repositories/kv"
)

// MedicationService owns the medication records and the transient selection
// set (the ids checked for the next entry being composed). The selection is
// cleared by every successful entry save.
type MedicationService struct {
	storage kv.Storage
	log     logging.Logger

	mu       sync.Mutex
	meds     []models.Medication
	selected []string
}

func NewMedicationService(storage kv.Storage, log logging.Logger) *MedicationService {
	return &MedicationService{storage: storage, log: log.With("component", "medications")}
}

// Load rehydrates the registry. A failed or absent load leaves it empty;
// load failures are logged, never fatal.
func (s *MedicationService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.storage.Load(ctx, kv.KeyMedications)
	if err != nil {
		s.log.Warn(ctx, "failed to load medications, starting empty", "error", err)
		return
	}
	if blob == nil {
		return
	}
	var meds []models.Medication
	if err := json.Unmarshal(blob, &meds); err != nil {
		s.log.Warn(ctx, "failed to decode medications, starting empty", "error", err)
		return
	}
	s.meds = meds
}

// Add registers a new medication under a trimmed, non-empty display name.
func (s *MedicationService) Add(ctx context.Context, name string) (*models.Medication, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrEmptyMedicationName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	med := models.Medication{ID: uuid.NewString(), Name: name}
	s.meds = append(s.meds, med)
	s.persist(ctx)
	return &med, nil
}

// Remove deletes the record. Names already copied onto entries stay as they
// are. The id also leaves the selection set.
func (s *MedicationService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.meds[:0]
	found := false
	for _, m := range s.meds {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return common.ErrNotFound
	}
	s.meds = kept
	s.dropSelection(id)
	s.persist(ctx)
	return nil
}

// All returns the registered medications in creation order.
func (s *MedicationService) All() []models.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Medication(nil), s.meds...)
}

// ToggleSelection flips the id in the selection set, preserving selection
// order. Unknown ids are ignored and reported false.
func (s *MedicationService) ToggleSelection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := false
	for _, m := range s.meds {
		if m.ID == id {
			known = true
			break
		}
	}
	if !known {
		return false
	}

	for _, sel := range s.selected {
		if sel == id {
			s.dropSelection(id)
			return true
		}
	}
	s.selected = append(s.selected, id)
	return true
}

// SelectedIDs returns the selection in the order the ids were checked.
func (s *MedicationService) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.selected...)
}

// ClearSelection empties the selection set. Called by the entry store as
// part of the addEntry postcondition.
func (s *MedicationService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// ResolveNames maps ids to display names, silently dropping ids with no
// matching record and preserving the given order.
func (s *MedicationService) ResolveNames(ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, m := range s.meds {
			if m.ID == id {
				names = append(names, m.Name)
				break
			}
		}
	}
	return names
}

func (s *MedicationService) dropSelection(id string) {
	kept := s.selected[:0]
	for _, sel := range s.selected {
		if sel != id {
			kept = append(kept, sel)
		}
	}
	s.selected = kept
}

// persist mirrors the collection into storage. Save failures leave memory
// correct but unpersisted; they are logged and otherwise ignored.
func (s *MedicationService) persist(ctx context.Context) {
	blob, err := json.Marshal(s.meds)
	if err != nil {
		s.log.Error(ctx, "failed to encode medications", "error", err)
		return
	}
	if err := s.storage.Save(ctx, kv.KeyMedications, blob); err != nil {
		s.log.Warn(ctx, "failed to save medications", "error", err)
	}
}
