package cli

import (
	"context"
	"fmt"
	"strings"

	"moodlog/internal/models"
)

// History with no argument lists the dates that have entries, newest first.
// With a YYYY-MM-DD argument it prints that day's entries in time order.
func (a *App) History(ctx context.Context, args []string) error {
	if len(args) == 0 {
		dates := a.entries.DatesWithEntries()
		if len(dates) == 0 {
			printlnFn("No entries yet. Use 'add' to record one.")
			return nil
		}
		printlnFn("Days with entries:")
		for _, d := range dates {
			printlnFn(fmt.Sprintf("  %s (%d)", d, len(a.entries.EntriesForDate(d))))
		}
		return nil
	}

	date := args[0]
	entries := a.entries.EntriesForDate(date)
	if len(entries) == 0 {
		printlnFn("No entries on", date)
		return nil
	}

	printlnFn("Entries on", date)
	for _, e := range entries {
		printEntry(e)
	}
	return nil
}

func printEntry(e models.MoodEntry) {
	printlnFn(fmt.Sprintf("  %s  anx %d  irr %d  dep %d  elev %d  energy %d",
		e.Time, e.Anxiety, e.Irritability, e.DepressedMood, e.ElevatedMood, e.Energy))
	if e.HasMorningLog() {
		var parts []string
		if e.Sleep != nil {
			parts = append(parts, fmt.Sprintf("sleep %.1fh", *e.Sleep))
		}
		if e.Weight != nil {
			parts = append(parts, fmt.Sprintf("weight %.1f", *e.Weight))
		}
		printlnFn("        morning:", strings.Join(parts, ", "))
	}
	if len(e.Medications) > 0 {
		printlnFn("        meds:", strings.Join(e.Medications, ", "))
	}
	if e.Notes != "" {
		printlnFn("        notes:", e.Notes)
	}
}
