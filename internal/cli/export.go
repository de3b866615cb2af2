package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"moodlog/internal/models"
	"moodlog/internal/report"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// Export writes an HTML report of the entries between the optional start and
// end dates (YYYY-MM-DD, both inclusive). Without arguments it exports
// everything.
func (a *App) Export(ctx context.Context, args []string) error {
	var startDate, endDate string
	if len(args) > 0 {
		startDate = args[0]
	}
	if len(args) > 1 {
		endDate = args[1]
	}
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := parseDate(d); err != nil {
			printlnFn("Invalid date:", d, "(expected YYYY-MM-DD)")
			return err
		}
	}

	entries := a.export.Filter(startDate, endDate)
	if len(entries) == 0 {
		printlnFn("Nothing to export in the selected range.")
		return nil
	}

	html, err := report.Render(a.export.GroupByDay(entries), startDate, endDate, a.clock.Now())
	if err != nil {
		a.log.Error(ctx, "failed to render report", "error", err)
		printlnFn("Export failed:", err.Error())
		return err
	}

	name := fmt.Sprintf("moodlog-report-%s.html", a.clock.Now().Format(models.DateLayout))
	if err := os.WriteFile(name, html, 0o600); err != nil {
		a.log.Error(ctx, "failed to write report", "file", name, "error", err)
		printlnFn("Export failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Exported %d entries to %s", len(entries), name))
	return nil
}
