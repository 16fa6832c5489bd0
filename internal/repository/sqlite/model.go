package sqlite

import "time"

// Task represents a row of the tasks table.
type Task struct {
	ID          int64
	UUID        string
	Title       string
	Description string
	DueDate     *time.Time // Using pointers to allow NULL values
	DueTime     *time.Time
	Location    *string
	Latitude    float64
	Longitude   float64
	Priority    int16
	Category    string
	IsComplete  bool
}

// TaskUpdate describes a partial update of a task row. Nil fields are
// left unchanged. Priority has no "unchanged" state: it is written on
// every update.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	DueTime     *time.Time
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Priority    int16
	Category    *string
	IsComplete  *bool
}
