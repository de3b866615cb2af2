package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"moodlog/internal/services"
)

// AddEntry drives the interactive entry form: morning log on the day's
// first entry, the five ratings, optional notes, and whatever medications
// were toggled with 'take'.
func (a *App) AddEntry(ctx context.Context) error {
	var in services.EntryInput

	if a.entries.IsFirstEntryToday() {
		printlnFn("Morning log (first entry today; leave blank to skip)")
		sleep, err := GetOptionalFloat(a.reader, "Sleep (hours):", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		weight, err := GetOptionalFloat(a.reader, "Weight (kg):", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		in.Sleep, in.Weight = sleep, weight
	}

	if selected := a.meds.SelectedIDs(); len(selected) > 0 {
		printlnFn("Medications taken:", strings.Join(a.meds.ResolveNames(selected), ", "))
		in.MedicationIDs = selected
	}

	ratings := []struct {
		label string
		dst   *int
	}{
		{"Anxiety", &in.Anxiety},
		{"Irritability", &in.Irritability},
		{"Depressed mood", &in.DepressedMood},
		{"Elevated mood", &in.ElevatedMood},
		{"Energy", &in.Energy},
	}
	for _, r := range ratings {
		v, err := GetRating(a.reader, r.label, os.Stdout)
		if err != nil {
			return err
		}
		*r.dst = v
	}

	notes, err := GetMultiline(a.reader, "Notes (optional):", os.Stdout)
	if err != nil {
		return err
	}
	in.Notes = notes

	e, err := a.entries.Add(ctx, in)
	if err != nil {
		printlnFn("Entry rejected:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Entry saved at %s.", e.Time))
	return nil
}
