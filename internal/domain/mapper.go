package domain

import (
	"taskmaster/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		UUID:        domainTask.UUID,
		Title:       domainTask.Title,
		Description: domainTask.Description,
		DueDate:     domainTask.DueDate,
		DueTime:     domainTask.DueTime,
		Location:    domainTask.Location,
		Latitude:    domainTask.Latitude,
		Longitude:   domainTask.Longitude,
		Priority:    int16(domainTask.Priority),
		Category:    domainTask.Category,
		IsComplete:  domainTask.IsComplete,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		UUID:        dbTask.UUID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		DueDate:     dbTask.DueDate,
		DueTime:     dbTask.DueTime,
		Location:    dbTask.Location,
		Latitude:    dbTask.Latitude,
		Longitude:   dbTask.Longitude,
		Priority:    Priority(dbTask.Priority),
		Category:    dbTask.Category,
		IsComplete:  dbTask.IsComplete,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := m.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// UpdateFromForm maps an editor form onto a partial database update.
// Nil form fields stay nil and therefore leave the stored value
// untouched; priority is carried over unconditionally.
func (m *TaskMapper) UpdateFromForm(form TaskForm) sqlite.TaskUpdate {
	return sqlite.TaskUpdate{
		Title:       nonEmptyPtr(form.Title),
		Description: form.Description,
		DueDate:     form.DueDate,
		DueTime:     form.DueTime,
		Location:    form.Location,
		Latitude:    form.Latitude,
		Longitude:   form.Longitude,
		Priority:    int16(form.Priority),
		Category:    form.Category,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}

func nonEmptyPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
