package services

import (
	"context"

	"taskmaster/internal/domain"
	"taskmaster/internal/errors"
	"taskmaster/internal/repository/sqlite"
	"taskmaster/internal/validation"
)

// editorServiceImpl implements the EditorService interface
type editorServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewEditorService creates a new EditorService instance.
func NewEditorService(repo sqlite.Repository) EditorService {
	return &editorServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// Submit validates the form and persists it. With no existing task the
// form becomes a create with defaults applied; otherwise it becomes a
// partial update where nil fields keep their stored value and priority
// is always overwritten. No persistence is attempted when validation
// fails, and a repository failure leaves the caller's task unchanged.
func (e *editorServiceImpl) Submit(ctx context.Context, form domain.TaskForm, existing *domain.Task) (*domain.Task, error) {
	if err := e.taskValidator.ValidateForm(form); err != nil {
		return nil, errors.NewValidationError("invalid task form", err)
	}

	cleanedTitle, err := e.taskValidator.GetValidTitle(form.Title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task form", err)
	}
	form.Title = cleanedTitle

	if existing == nil {
		return e.create(ctx, form)
	}
	return e.update(ctx, form, existing)
}

// create persists a brand-new task and returns it with its assigned
// identity.
func (e *editorServiceImpl) create(ctx context.Context, form domain.TaskForm) (*domain.Task, error) {
	dbTask := e.mapper.Task.ToDatabase(form.NewTask())

	if err := e.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := e.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// update applies a partial update and returns the refreshed task.
func (e *editorServiceImpl) update(ctx context.Context, form domain.TaskForm, existing *domain.Task) (*domain.Task, error) {
	fields := e.mapper.Task.UpdateFromForm(form)

	if err := e.repo.UpdateTask(ctx, existing.ID, fields); err != nil {
		return nil, err
	}

	// Re-read so the caller sees exactly what was committed.
	dbTask, err := e.repo.GetTask(ctx, existing.ID)
	if err != nil {
		return nil, err
	}

	updated := e.mapper.Task.FromDatabase(*dbTask)
	return &updated, nil
}
