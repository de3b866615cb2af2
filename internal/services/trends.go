package services

import (
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"moodlog/internal/models"
)

// TrendService is the aggregation engine: per-day averaged metrics over a
// requested lookback window, derived from the entry store's contents.
type TrendService struct {
	entries *EntryService
	clock   clockwork.Clock
}

func NewTrendService(entries *EntryService, clock clockwork.Clock) *TrendService {
	return &TrendService{entries: entries, clock: clock}
}

type dayAccum struct {
	count         int
	anxiety       int
	irritability  int
	depressedMood int
	elevatedMood  int
	energy        int
	sleep         *float64
	weight        *float64
}

// Aggregate selects entries with timestamp >= now − window, groups them by
// date and returns each day's arithmetic rating means in ascending date
// order. The window boundary is a rolling cutoff: the day range covers the
// last 24 hours, not the current calendar day. An empty store yields an
// empty result.
func (t *TrendService) Aggregate(rng models.TimeRange) []models.AggregatedDay {
	var cutoff time.Time
	days, bounded := rng.WindowDays()
	if bounded {
		cutoff = t.clock.Now().AddDate(0, 0, -days)
	}

	groups := make(map[string]*dayAccum)
	for _, e := range t.entries.All() {
		if bounded && e.Timestamp.Before(cutoff) {
			continue
		}
		acc, ok := groups[e.Date]
		if !ok {
			acc = &dayAccum{}
			groups[e.Date] = acc
		}
		acc.count++
		acc.anxiety += e.Anxiety
		acc.irritability += e.Irritability
		acc.depressedMood += e.DepressedMood
		acc.elevatedMood += e.ElevatedMood
		acc.energy += e.Energy
		// At most one entry per date carries the morning log.
		if e.Sleep != nil {
			acc.sleep = e.Sleep
		}
		if e.Weight != nil {
			acc.weight = e.Weight
		}
	}

	out := make([]models.AggregatedDay, 0, len(groups))
	for date, acc := range groups {
		n := float64(acc.count)
		out = append(out, models.AggregatedDay{
			Date:          date,
			Anxiety:       float64(acc.anxiety) / n,
			Irritability:  float64(acc.irritability) / n,
			DepressedMood: float64(acc.depressedMood) / n,
			ElevatedMood:  float64(acc.elevatedMood) / n,
			Energy:        float64(acc.energy) / n,
			Sleep:         acc.sleep,
			Weight:        acc.weight,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
