package models

// Medication maps an opaque id to a display name. Removing a medication does
// not cascade into names already copied onto entries.
type Medication struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReminderConfig is the persisted reminder collection: whether notifications
// are enabled and the ordered, duplicate-free set of HH:MM times.
type ReminderConfig struct {
	Enabled bool     `json:"enabled"`
	Times   []string `json:"times"`
}

// DefaultReminderTimes seeds a fresh store.
func DefaultReminderTimes() []string {
	return []string{"09:00", "14:00", "19:00"}
}
