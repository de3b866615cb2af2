// Package models defines the observation records and derived values owned by
// the moodlog core.
package models

import "time"

// Layouts for the derived calendar fields. Date sorts lexicographically;
// Time is zero-padded so HH:MM string compare matches chronological order.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MoodEntry is one timestamped self-observation. Entries are immutable once
// written; Timestamp is the sole ordering key.
type MoodEntry struct {
	// ID is a monotonically increasing creation token, unique within a
	// session (unix milliseconds of creation, bumped on collision).
	ID int64 `json:"id"`

	// Date and Time are derived from the creation instant in local time.
	Date string `json:"date"`
	Time string `json:"time"`

	// Timestamp is the full creation instant.
	Timestamp time.Time `json:"timestamp"`

	// The five ratings, each in [1, 10].
	Anxiety       int `json:"anxiety"`
	Irritability  int `json:"irritability"`
	DepressedMood int `json:"depressedMood"`
	ElevatedMood  int `json:"elevatedMood"`
	Energy        int `json:"energy"`

	Notes string `json:"notes"`

	// Medications holds display names copied at creation time, in selection
	// order. Later renames or removals never touch them.
	Medications []string `json:"medications"`

	// Sleep (hours) and Weight are the morning log: present only on the
	// chronologically first entry of a date, absent everywhere else.
	Sleep  *float64 `json:"sleep,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// HasMorningLog reports whether the entry carries either morning-log field.
func (e *MoodEntry) HasMorningLog() bool {
	return e.Sleep != nil || e.Weight != nil
}

// DayGroup is one calendar day's entries, ascending by Time, as handed to
// the report renderer.
type DayGroup struct {
	Date    string
	Entries []MoodEntry
}
