// Package report renders the grouped, date-bounded export as a printable
// HTML document. The day grouping and filtering are the export filter's job;
// this package only produces markup.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"moodlog/internal/models"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Mood Tracker Report</title>
<style>
body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
h1 { color: #4f46e5; border-bottom: 3px solid #4f46e5; padding-bottom: 10px; }
h2 { color: #6366f1; margin-top: 30px; border-bottom: 2px solid #e0e7ff; padding-bottom: 5px; }
h3 { color: #374151; }
blockquote { border-left: 3px solid #4f46e5; padding-left: 10px; font-style: italic; color: #4b5563; }
@media print { h2 { page-break-after: avoid; } }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// Render produces the report for the given day groups (newest day first, as
// the export filter hands them over). The date bounds only feed the header;
// empty bounds render as open-ended.
func Render(days []models.DayGroup, startDate, endDate string, generatedAt time.Time) ([]byte, error) {
	var md strings.Builder

	md.WriteString("# Mood Tracker Report\n\n")
	fmt.Fprintf(&md, "**Generated:** %s\n\n", generatedAt.Format("January 2, 2006 15:04"))
	if startDate != "" || endDate != "" {
		fmt.Fprintf(&md, "**Date Range:** %s to %s\n\n", orOpen(startDate, "Start"), orOpen(endDate, "End"))
	}

	for _, day := range days {
		writeDay(&md, day)
	}

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &body); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	var out bytes.Buffer
	out.WriteString(htmlHeader)
	out.Write(body.Bytes())
	out.WriteString(htmlFooter)
	return out.Bytes(), nil
}

func writeDay(md *strings.Builder, day models.DayGroup) {
	fmt.Fprintf(md, "## %s\n\n", headingDate(day.Date))

	if len(day.Entries) > 0 {
		// the morning log sits on the day's first entry
		first := day.Entries[0]
		if first.HasMorningLog() {
			var parts []string
			if first.Sleep != nil {
				parts = append(parts, fmt.Sprintf("**Sleep:** %g hours", *first.Sleep))
			}
			if first.Weight != nil {
				parts = append(parts, fmt.Sprintf("**Weight:** %g kg", *first.Weight))
			}
			md.WriteString(strings.Join(parts, " · ") + "\n\n")
		}
	}

	for _, e := range day.Entries {
		fmt.Fprintf(md, "### %s\n\n", e.Time)
		fmt.Fprintf(md, "Anxiety %d · Irritability %d · Depressed %d · Elevated %d · Energy %d\n\n",
			e.Anxiety, e.Irritability, e.DepressedMood, e.ElevatedMood, e.Energy)
		if len(e.Medications) > 0 {
			fmt.Fprintf(md, "**Medications:** %s\n\n", strings.Join(e.Medications, ", "))
		}
		if e.Notes != "" {
			fmt.Fprintf(md, "> %s\n\n", e.Notes)
		}
	}
}

// headingDate expands 2024-01-31 into "Wednesday, January 31, 2024";
// unparsable dates fall back to the raw string.
func headingDate(date string) string {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

func orOpen(bound, fallback string) string {
	if bound == "" {
		return fallback
	}
	return bound
}
