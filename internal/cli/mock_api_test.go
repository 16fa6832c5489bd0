package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"taskmaster/internal/api"
	"taskmaster/internal/domain"
	"taskmaster/internal/errors"
	"taskmaster/internal/location"
)

// mockAPI implements the api.API interface for testing
type mockAPI struct {
	tasks      map[int64]*domain.Task
	nextID     int64
	connected  bool
	places     []location.Place
	placeName  string
	nearbyHits [][2]float64
	reminders  int
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		tasks:     make(map[int64]*domain.Task),
		nextID:    1,
		connected: true,
	}
}

func (m *mockAPI) CreateTask(ctx context.Context, form domain.TaskForm) (*domain.Task, error) {
	if strings.TrimSpace(form.Title) == "" {
		return nil, errors.NewValidationError("invalid task form", nil)
	}

	task := form.NewTask()
	task.ID = m.nextID
	task.UUID = fmt.Sprintf("mock-%d", m.nextID)
	m.tasks[task.ID] = &task
	m.nextID++
	return &task, nil
}

func (m *mockAPI) UpdateTask(ctx context.Context, id int64, form domain.TaskForm) (*domain.Task, error) {
	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}

	if form.Title != "" {
		task.Title = form.Title
	}
	if form.Description != nil {
		task.Description = *form.Description
	}
	if form.DueDate != nil {
		task.DueDate = form.DueDate
	}
	if form.DueTime != nil {
		task.DueTime = form.DueTime
	}
	if form.Location != nil {
		task.Location = form.Location
	}
	if form.Latitude != nil {
		task.Latitude = *form.Latitude
	}
	if form.Longitude != nil {
		task.Longitude = *form.Longitude
	}
	if form.Category != nil {
		task.Category = *form.Category
	}
	task.Priority = form.Priority
	return task, nil
}

func (m *mockAPI) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return task, nil
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	ids := make([]int64, 0, len(m.tasks))
	for id := range m.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, m.tasks[id])
	}
	return tasks, nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, id int64) error {
	if _, exists := m.tasks[id]; !exists {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockAPI) ToggleComplete(ctx context.Context, id int64) (*domain.Task, error) {
	task, exists := m.tasks[id]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	task.IsComplete = !task.IsComplete
	return task, nil
}

func (m *mockAPI) ListGrouped(ctx context.Context, query string, criteria domain.SortCriteria) (*domain.GroupedTaskView, error) {
	tasks, _ := m.ListTasks(ctx)

	sections := make(map[string][]*domain.Task)
	for _, task := range tasks {
		if query != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(query)) {
			continue
		}
		sections[task.Category] = append(sections[task.Category], task)
	}

	order := make([]string, 0, len(sections))
	for category := range sections {
		order = append(order, category)
	}
	sort.Strings(order)

	return &domain.GroupedTaskView{Sections: sections, Order: order}, nil
}

func (m *mockAPI) CheckNearby(ctx context.Context, lat, lng float64) ([]*domain.Task, error) {
	m.nearbyHits = append(m.nearbyHits, [2]float64{lat, lng})

	var nearby []*domain.Task
	for _, task := range m.tasks {
		if !task.IsComplete && task.Latitude == lat && task.Longitude == lng {
			nearby = append(nearby, task)
		}
	}
	return nearby, nil
}

func (m *mockAPI) RefreshReminders(ctx context.Context) (int, error) {
	count := 0
	for _, task := range m.tasks {
		if _, ok := task.DueInstant(); ok && !task.IsComplete {
			count++
		}
	}
	m.reminders = count
	return count, nil
}

func (m *mockAPI) SearchPlaces(ctx context.Context, query string) ([]location.Place, error) {
	if !m.connected {
		return nil, errors.NewNetworkError("place search")
	}
	return m.places, nil
}

func (m *mockAPI) ResolvePlace(ctx context.Context, coord location.Coordinate) (string, error) {
	if !m.connected {
		return "", errors.NewNetworkError("reverse geocode")
	}
	return m.placeName, nil
}

var _ api.API = (*mockAPI)(nil)

// setupTestApp creates a test app backed by the mock API
func setupTestApp(t *testing.T) (*App, *mockAPI) {
	mock := newMockAPI()
	return NewApp(mock), mock
}

// seedTask inserts a task directly into the mock store
func (m *mockAPI) seedTask(task domain.Task) *domain.Task {
	task.ID = m.nextID
	task.UUID = fmt.Sprintf("mock-%d", m.nextID)
	m.tasks[task.ID] = &task
	m.nextID++
	return m.tasks[task.ID]
}

func dueIn(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}
