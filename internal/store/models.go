package store

import "time"

// Task is a persisted to-do item the Tasks view feeds into the prioritizer.
type Task struct {
	ID         int64
	Name       string
	Importance int    // 1-5
	Effort     int    // 1-5
	Deadline   string // YYYY-MM-DD, empty = none
	Tags       string
	Notes      string
	Archived   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Setting struct {
	Key   string
	Value string
}
