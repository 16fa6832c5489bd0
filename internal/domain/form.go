package domain

import "time"

// TaskForm carries the fields of the task editor. Pointer fields encode
// optionality: on create, nil means "not provided, use the default"; on
// edit, nil means "leave the stored value unchanged". Priority is the
// exception and is always written on update, whatever the form holds.
type TaskForm struct {
	Title       string
	Description *string
	DueDate     *time.Time
	DueTime     *time.Time
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Priority    Priority
	Category    *string
}

// NewTask materializes a form into a task with creation defaults
// applied: empty description, no due date/time, no location with
// coordinates at the unset sentinel, and category "Other" when none was
// chosen.
func (f TaskForm) NewTask() Task {
	task := Task{
		Title:    f.Title,
		Priority: f.Priority,
		Category: CategoryOther,
	}
	if f.Description != nil {
		task.Description = *f.Description
	}
	if f.Category != nil {
		task.Category = *f.Category
	}
	task.DueDate = f.DueDate
	task.DueTime = f.DueTime
	task.Location = f.Location
	if f.Latitude != nil {
		task.Latitude = *f.Latitude
	}
	if f.Longitude != nil {
		task.Longitude = *f.Longitude
	}
	return task
}
