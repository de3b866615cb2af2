package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"moodlog/internal/common"
	"moodlog/internal/models"
)

// Medications lists the registry, marking the ones toggled for the next entry.
func (a *App) Medications(ctx context.Context) error {
	meds := a.meds.All()
	if len(meds) == 0 {
		printlnFn("No medications registered. Use 'addmed' to add one.")
		return nil
	}

	selected := make(map[string]bool)
	for _, id := range a.meds.SelectedIDs() {
		selected[id] = true
	}

	printlnFn("Medications:")
	for i, m := range meds {
		mark := " "
		if selected[m.ID] {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("  %d. [%s] %s", i+1, mark, m.Name))
	}
	printlnFn("(* = taken with the next entry; toggle with 'take <n>')")
	return nil
}

func (a *App) AddMedication(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Medication name:", os.Stdout)
	if err != nil {
		return err
	}

	m, err := a.meds.Add(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrEmptyMedicationName) {
			printlnFn("Medication name cannot be empty.")
			return err
		}
		printlnFn("Failed to add medication:", err.Error())
		return err
	}

	printlnFn("Added", m.Name)
	return nil
}

func (a *App) RemoveMedication(ctx context.Context, args []string) error {
	m, err := a.medicationByIndex(args)
	if err != nil {
		return err
	}

	if err := a.meds.Remove(ctx, m.ID); err != nil {
		printlnFn("Failed to remove medication:", err.Error())
		return err
	}

	printlnFn("Removed", m.Name)
	return nil
}

// ToggleMedication flips whether medication n goes onto the next entry.
func (a *App) ToggleMedication(ctx context.Context, args []string) error {
	m, err := a.medicationByIndex(args)
	if err != nil {
		return err
	}

	if a.meds.ToggleSelection(m.ID) {
		printlnFn(m.Name, "will be recorded with the next entry.")
	} else {
		printlnFn(m.Name, "unselected.")
	}
	return nil
}

// medicationByIndex resolves a 1-based index argument against the registry.
func (a *App) medicationByIndex(args []string) (*models.Medication, error) {
	if len(args) == 0 {
		printlnFn("Usage: <command> <n> (see 'meds' for numbers)")
		return nil, errors.New("missing medication number")
	}

	meds := a.meds.All()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(meds) {
		printlnFn("No such medication:", args[0])
		return nil, common.ErrNotFound
	}
	return &meds[n-1], nil
}
