package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskmaster/internal/domain"
	"taskmaster/internal/errors"
	"taskmaster/internal/location"
	"taskmaster/internal/network"
	"taskmaster/internal/repository/sqlite"
	"taskmaster/internal/services"
	"taskmaster/internal/validation"
)

// API defines the interface for all task operations.
type API interface {
	// ========== Task Management ==========

	// CreateTask validates the form and persists a new task
	CreateTask(ctx context.Context, form domain.TaskForm) (*domain.Task, error)

	// UpdateTask applies a partial update to an existing task
	UpdateTask(ctx context.Context, id int64, form domain.TaskForm) (*domain.Task, error)

	// GetTask returns a single task by ID
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns every stored task in insertion order
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// DeleteTask removes a task and cancels its pending reminder
	DeleteTask(ctx context.Context, id int64) error

	// ToggleComplete flips a task's completion flag
	ToggleComplete(ctx context.Context, id int64) (*domain.Task, error)

	// ========== Organizing and Discovery ==========

	// ListGrouped filters, sorts, and groups tasks for display
	ListGrouped(ctx context.Context, query string, criteria domain.SortCriteria) (*domain.GroupedTaskView, error)

	// CheckNearby returns incomplete tasks within the proximity
	// threshold of the given position and requests alerts for them
	CheckNearby(ctx context.Context, lat, lng float64) ([]*domain.Task, error)

	// RefreshReminders re-registers due notifications for every task
	RefreshReminders(ctx context.Context) (int, error)

	// ========== Places ==========

	// SearchPlaces looks up candidate places for a free-text query
	SearchPlaces(ctx context.Context, query string) ([]location.Place, error)

	// ResolvePlace turns a coordinate back into a place name
	ResolvePlace(ctx context.Context, coord location.Coordinate) (string, error)
}

// apiImpl implements the API interface
type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	editor        services.EditorService
	organizer     services.OrganizerService
	proximity     services.ProximityService
	reminders     services.ReminderService
	geocoder      location.Geocoder
	reachability  network.Reachability
	logger        *zap.Logger
}

// Deps bundles the collaborators the API composes.
type Deps struct {
	Repo         sqlite.Repository
	Editor       services.EditorService
	Organizer    services.OrganizerService
	Proximity    services.ProximityService
	Reminders    services.ReminderService
	Geocoder     location.Geocoder
	Reachability network.Reachability
	Logger       *zap.Logger
}

// New creates a new API instance.
func New(deps Deps) API {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &apiImpl{
		repo:          deps.Repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		editor:        deps.Editor,
		organizer:     deps.Organizer,
		proximity:     deps.Proximity,
		reminders:     deps.Reminders,
		geocoder:      deps.Geocoder,
		reachability:  deps.Reachability,
		logger:        deps.Logger,
	}
}

// ========== Task Management ==========

func (a *apiImpl) CreateTask(ctx context.Context, form domain.TaskForm) (*domain.Task, error) {
	return a.editor.Submit(ctx, form, nil)
}

func (a *apiImpl) UpdateTask(ctx context.Context, id int64, form domain.TaskForm) (*domain.Task, error) {
	existing, err := a.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.editor.Submit(ctx, form, existing)
}

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	domainTasks := make([]*domain.Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := a.mapper.Task.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks, nil
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	task, err := a.GetTask(ctx, id)
	if err != nil {
		return err
	}

	// Cancel the reminder before the row goes away so a failed delete
	// never leaves the task without its notification.
	a.reminders.CancelForTask(task)

	return a.repo.DeleteTask(ctx, id)
}

func (a *apiImpl) ToggleComplete(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := a.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	completed := !task.IsComplete
	update := sqlite.TaskUpdate{
		IsComplete: &completed,
		Priority:   int16(task.Priority),
	}
	if err := a.repo.UpdateTask(ctx, id, update); err != nil {
		return nil, err
	}

	if completed {
		a.reminders.CancelForTask(task)
	}

	task.IsComplete = completed
	return task, nil
}

// ========== Organizing and Discovery ==========

func (a *apiImpl) ListGrouped(ctx context.Context, query string, criteria domain.SortCriteria) (*domain.GroupedTaskView, error) {
	tasks, err := a.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filtered := a.organizer.Filter(tasks, query, now)
	return a.organizer.Organize(filtered, criteria, now), nil
}

func (a *apiImpl) CheckNearby(ctx context.Context, lat, lng float64) ([]*domain.Task, error) {
	tasks, err := a.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	// Completed tasks never raise proximity alerts.
	pending := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsComplete {
			pending = append(pending, task)
		}
	}

	return a.proximity.NotifyNearby(ctx, pending, lat, lng), nil
}

func (a *apiImpl) RefreshReminders(ctx context.Context) (int, error) {
	tasks, err := a.ListTasks(ctx)
	if err != nil {
		return 0, err
	}

	pending := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.IsComplete {
			pending = append(pending, task)
		}
	}

	return a.reminders.ScheduleReminders(pending, time.Now()), nil
}

// ========== Places ==========

func (a *apiImpl) SearchPlaces(ctx context.Context, query string) ([]location.Place, error) {
	if a.reachability != nil && !a.reachability.IsConnected() {
		return nil, errors.NewNetworkError("place search")
	}
	return a.geocoder.Search(ctx, query)
}

func (a *apiImpl) ResolvePlace(ctx context.Context, coord location.Coordinate) (string, error) {
	if a.reachability != nil && !a.reachability.IsConnected() {
		return "", errors.NewNetworkError("reverse geocode")
	}
	return a.geocoder.ReverseGeocode(ctx, coord)
}
