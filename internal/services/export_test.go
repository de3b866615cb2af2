package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedExportEntries creates one entry per day from 2024-01-30 through
// 2024-02-02, with an extra same-day entry on 2024-01-31.
func seedExportEntries(t *testing.T) *ExportService {
	t.Helper()
	s, _, clock, _ := setupEntryService(t, time.Date(2024, 1, 30, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := s.Add(ctx, EntryInput{Anxiety: i + 1})
		require.NoError(t, err)
		if i == 1 {
			clock.Advance(5 * time.Hour)
			_, err = s.Add(ctx, EntryInput{Anxiety: 9})
			require.NoError(t, err)
			clock.Advance(19 * time.Hour)
			continue
		}
		clock.Advance(24 * time.Hour)
	}
	return NewExportService(s)
}

func TestFilter_NoBoundsReturnsEverything(t *testing.T) {
	export := seedExportEntries(t)

	got := export.Filter("", "")
	assert.Len(t, got, 5)
}

func TestFilter_InclusiveBounds(t *testing.T) {
	export := seedExportEntries(t)

	got := export.Filter("2024-01-01", "2024-01-31")
	require.Len(t, got, 3)
	for _, e := range got {
		assert.LessOrEqual(t, e.Date, "2024-01-31")
	}

	// an end bound on the 31st excludes the Feb 1st entry but keeps the 31st
	dates := map[string]int{}
	for _, e := range got {
		dates[e.Date]++
	}
	assert.Equal(t, map[string]int{"2024-01-30": 1, "2024-01-31": 2}, dates)
}

func TestFilter_StartBoundOnly(t *testing.T) {
	export := seedExportEntries(t)

	got := export.Filter("2024-02-01", "")
	require.Len(t, got, 2)
	for _, e := range got {
		assert.GreaterOrEqual(t, e.Date, "2024-02-01")
	}
}

func TestGroupByDay_Ordering(t *testing.T) {
	export := seedExportEntries(t)

	groups := export.GroupByDay(export.Filter("", ""))
	require.Len(t, groups, 4)

	// newest date first
	assert.Equal(t, "2024-02-02", groups[0].Date)
	assert.Equal(t, "2024-01-30", groups[3].Date)

	// within a day, ascending by time
	var day31 []string
	for _, g := range groups {
		if g.Date == "2024-01-31" {
			for _, e := range g.Entries {
				day31 = append(day31, e.Time)
			}
		}
	}
	assert.Equal(t, []string{"09:00", "14:00"}, day31)
}
