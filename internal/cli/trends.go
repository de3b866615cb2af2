package cli

import (
	"context"
	"fmt"

	"moodlog/internal/models"
)

// Trends prints per-day rating averages over the requested lookback window.
func (a *App) Trends(ctx context.Context, args []string) error {
	rng := models.RangeWeek
	if len(args) > 0 {
		parsed, err := models.ParseTimeRange(args[0])
		if err != nil {
			printlnFn(err.Error())
			printlnFn("Valid ranges: day, week, month, year, all")
			return err
		}
		rng = parsed
	}

	days := a.trends.Aggregate(rng)
	if len(days) == 0 {
		printlnFn("No entries in the selected range.")
		return nil
	}

	printlnFn(fmt.Sprintf("Daily averages (%s):", rng))
	printlnFn("  date         anx   irr   dep  elev  energy")
	for _, d := range days {
		line := fmt.Sprintf("  %s  %4.1f  %4.1f  %4.1f  %4.1f  %4.1f",
			d.Date, d.Anxiety, d.Irritability, d.DepressedMood, d.ElevatedMood, d.Energy)
		if d.Sleep != nil {
			line += fmt.Sprintf("  sleep %.1fh", *d.Sleep)
		}
		if d.Weight != nil {
			line += fmt.Sprintf("  weight %.1f", *d.Weight)
		}
		printlnFn(line)
	}
	return nil
}
