package domain

import (
	"strconv"
	"strings"
	"time"
)

// Priority is the numeric priority code carried by a task.
// The raw codes are part of the storage contract: None is 0 and sorts
// before High when ordering by priority.
type Priority int16

const (
	PriorityNone   Priority = 0
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// String returns the display name for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "None"
	}
}

// IsValid reports whether the priority is one of the known codes.
func (p Priority) IsValid() bool {
	return p >= PriorityNone && p <= PriorityLow
}

// ParsePriority parses a priority from its display name (case-insensitive)
// or its raw numeric code.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	case "none", "":
		return PriorityNone, true
	}
	if code, err := strconv.Atoi(s); err == nil {
		p := Priority(code)
		if p.IsValid() {
			return p, true
		}
	}
	return PriorityNone, false
}

// Well-known category names. Categories are free text; these are the
// choices the original picker offers and anything else passes through.
const (
	CategoryWork     = "Work"
	CategoryPersonal = "Personal"
	CategoryUrgent   = "Urgent"
	CategoryStudy    = "Study"
	CategoryOther    = "Other"
)

// Status is the derived lifecycle classification of a task.
// It is never persisted and must be recomputed on every read.
type Status string

const (
	StatusComplete Status = "Complete"
	StatusOverdue  Status = "Overdue"
	StatusPending  Status = "Pending"
)

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	UUID        string
	Title       string
	Description string
	DueDate     *time.Time
	DueTime     *time.Time
	Location    *string
	Latitude    float64
	Longitude   float64
	Priority    Priority
	Category    string
	IsComplete  bool
}

// DueInstant combines DueDate's calendar day with DueTime's
// hour/minute/second into a single instant. The second return value is
// false when either part is missing; such a task has no due instant and
// can never be overdue.
func (t Task) DueInstant() (time.Time, bool) {
	if t.DueDate == nil || t.DueTime == nil {
		return time.Time{}, false
	}
	d, c := *t.DueDate, *t.DueTime
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, d.Location()), true
}

// Status derives the task's current status at the given instant.
// A complete task is always Complete regardless of its due date. A task
// whose due instant is strictly before now is Overdue. Everything else,
// including tasks missing a due date or due time, is Pending.
func (t Task) Status(now time.Time) Status {
	if t.IsComplete {
		return StatusComplete
	}
	if due, ok := t.DueInstant(); ok && due.Before(now) {
		return StatusOverdue
	}
	return StatusPending
}

// HasCoordinates reports whether the task carries a usable geolocation.
// Exactly (0, 0) is the unset sentinel and is never considered a real
// position.
func (t Task) HasCoordinates() bool {
	return t.Latitude > 0 && t.Longitude > 0
}

// NotificationID returns the identifier used for notification requests
// belonging to this task. It is derived from the persistent identity so
// scheduling and cancellation are idempotent per task.
func (t Task) NotificationID() string {
	return "task-" + t.UUID
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
