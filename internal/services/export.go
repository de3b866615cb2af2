package services

import (
	"sort"

	"moodlog/internal/models"
)

// ExportService derives the date-bounded subset of entries for the report
// renderer.
type ExportService struct {
	entries *EntryService
}

func NewExportService(entries *EntryService) *ExportService {
	return &ExportService{entries: entries}
}

// Filter returns the entries whose date falls inside the inclusive bounds.
// An empty bound is unbounded on that side; with both empty the full
// collection comes back unfiltered. Only the date field is compared; the
// time of day never affects boundary inclusion.
func (s *ExportService) Filter(startDate, endDate string) []models.MoodEntry {
	all := s.entries.All()
	if startDate == "" && endDate == "" {
		return all
	}

	var out []models.MoodEntry
	for _, e := range all {
		if startDate != "" && e.Date < startDate {
			continue
		}
		if endDate != "" && e.Date > endDate {
			continue
		}
		out = append(out, e)
	}
	return out
}

// GroupByDay arranges entries into day sections, newest date first, each
// day's entries ascending by time. This is the shape the report renderer
// consumes.
func (s *ExportService) GroupByDay(entries []models.MoodEntry) []models.DayGroup {
	byDate := make(map[string][]models.MoodEntry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	groups := make([]models.DayGroup, 0, len(byDate))
	for date, day := range byDate {
		sort.SliceStable(day, func(i, j int) bool { return day[i].Time < day[j].Time })
		groups = append(groups, models.DayGroup{Date: date, Entries: day})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}
