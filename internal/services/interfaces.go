package services

import (
	"context"
	"time"

	"taskmaster/internal/domain"
)

// OrganizerService turns a flat task collection into presentation-ready
// grouped output.
type OrganizerService interface {
	// Filter narrows tasks to those matching a case-insensitive
	// substring query over title, description, category, formatted due
	// date, and priority (code and name). An empty query matches all.
	Filter(tasks []*domain.Task, query string, now time.Time) []*domain.Task

	// Organize sorts the collection by the given criteria and buckets
	// it by category. Section order is always lexicographic on category
	// name regardless of the sort criteria.
	Organize(tasks []*domain.Task, criteria domain.SortCriteria, now time.Time) *domain.GroupedTaskView
}

// ProximityService decides which tasks warrant a nearby alert for a
// given user position.
type ProximityService interface {
	// FindNearby returns the tasks whose stored coordinates lie within
	// thresholdMeters of the user position. Tasks at the (0,0) unset
	// sentinel are never eligible.
	FindNearby(tasks []*domain.Task, lat, lng, thresholdMeters float64) []*domain.Task

	// NotifyNearby finds nearby tasks and requests one notification per
	// qualifying task. Scheduling failures are logged, never returned.
	NotifyNearby(ctx context.Context, tasks []*domain.Task, lat, lng float64) []*domain.Task
}

// ReminderService schedules due-date notifications for tasks.
type ReminderService interface {
	// ScheduleReminders registers a notification for every task that
	// has both a due date and a due time. Returns how many were
	// scheduled. Failures are logged and skipped.
	ScheduleReminders(tasks []*domain.Task, now time.Time) int

	// CancelForTask removes any pending notification for the task.
	CancelForTask(task *domain.Task)
}

// EditorService validates editor forms and persists them.
type EditorService interface {
	// Submit validates the form and either creates a new task
	// (existing == nil) or applies a partial update to the existing
	// one. On any failure the existing task is left untouched.
	Submit(ctx context.Context, form domain.TaskForm, existing *domain.Task) (*domain.Task, error)
}
