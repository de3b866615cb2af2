package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlog/internal/models"
)

func fptr(v float64) *float64 { return &v }

func sampleDays() []models.DayGroup {
	return []models.DayGroup{
		{
			Date: "2024-01-31",
			Entries: []models.MoodEntry{
				{
					Date: "2024-01-31", Time: "08:15",
					Anxiety: 4, Irritability: 3, DepressedMood: 2, ElevatedMood: 5, Energy: 6,
					Sleep: fptr(7.5), Weight: fptr(80),
					Medications: []string{"Lithium", "Sertraline"},
					Notes:       "slept well",
				},
				{
					Date: "2024-01-31", Time: "20:30",
					Anxiety: 6, Irritability: 5, DepressedMood: 3, ElevatedMood: 4, Energy: 3,
				},
			},
		},
		{
			Date: "2024-01-30",
			Entries: []models.MoodEntry{
				{Date: "2024-01-30", Time: "09:00", Anxiety: 5},
			},
		},
	}
}

func TestRender_SectionsNewestDayFirst(t *testing.T) {
	out, err := Render(sampleDays(), "", "", time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Mood Tracker Report")
	assert.Contains(t, html, "Wednesday, January 31, 2024")
	assert.Contains(t, html, "Tuesday, January 30, 2024")
	assert.Less(t,
		strings.Index(html, "January 31"),
		strings.Index(html, "January 30"),
		"newer day must render first")
}

func TestRender_MorningLogAndEntryDetails(t *testing.T) {
	out, err := Render(sampleDays(), "", "", time.Now())
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Sleep:")
	assert.Contains(t, html, "7.5 hours")
	assert.Contains(t, html, "80 kg")
	assert.Contains(t, html, "Lithium, Sertraline")
	assert.Contains(t, html, "slept well")
	assert.Contains(t, html, "Anxiety 4")
}

func TestRender_DateRangeHeader(t *testing.T) {
	out, err := Render(nil, "2024-01-01", "", time.Now())
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-01-01 to End")

	out, err = Render(nil, "", "", time.Now())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Date Range")
}
