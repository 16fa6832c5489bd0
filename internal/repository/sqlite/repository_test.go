package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*SQLiteRepository, func()) {
	repo, err := New(":memory:")
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
	}

	return repo, cleanup
}

func TestCreateTask(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := &Task{Title: "Buy milk", Category: "Personal"}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Greater(t, task.ID, int64(0))
	assert.NotEmpty(t, task.UUID)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, retrieved.ID)
	assert.Equal(t, task.UUID, retrieved.UUID)
	assert.Equal(t, "Buy milk", retrieved.Title)
	assert.Equal(t, "Personal", retrieved.Category)
	assert.Nil(t, retrieved.DueDate)
	assert.Nil(t, retrieved.DueTime)
	assert.Nil(t, retrieved.Location)
	assert.False(t, retrieved.IsComplete)
}

func TestCreateTask_KeepsProvidedUUID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := &Task{Title: "Pinned identity", UUID: "fixed-uuid"}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "fixed-uuid", retrieved.UUID)
}

func TestCreateTask_AllFieldsRoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	at := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)
	loc := "Office"

	task := &Task{
		Title:       "Submit report",
		Description: "quarterly numbers",
		DueDate:     &due,
		DueTime:     &at,
		Location:    &loc,
		Latitude:    51.5007,
		Longitude:   0.1246,
		Priority:    2,
		Category:    "Work",
		IsComplete:  false,
	}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Title, retrieved.Title)
	assert.Equal(t, task.Description, retrieved.Description)
	require.NotNil(t, retrieved.DueDate)
	assert.Equal(t, due.Unix(), retrieved.DueDate.Unix())
	require.NotNil(t, retrieved.DueTime)
	assert.Equal(t, at.Unix(), retrieved.DueTime.Unix())
	require.NotNil(t, retrieved.Location)
	assert.Equal(t, loc, *retrieved.Location)
	assert.Equal(t, task.Latitude, retrieved.Latitude)
	assert.Equal(t, task.Longitude, retrieved.Longitude)
	assert.Equal(t, int16(2), retrieved.Priority)
	assert.Equal(t, "Work", retrieved.Category)
}

func TestGetTask_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetTask(context.Background(), 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListTasks(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		err := repo.CreateTask(context.Background(), &Task{Title: title})
		require.NoError(t, err)
	}

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Insertion order.
	for i, title := range titles {
		assert.Equal(t, title, tasks[i].Title)
	}
}

func TestUpdateTask_PartialUpdate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := &Task{Title: "Original", Description: "keep me", Category: "Work", Priority: 1}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)

	newTitle := "Renamed"
	err = repo.UpdateTask(context.Background(), task.ID, TaskUpdate{
		Title:    &newTitle,
		Priority: 1,
	})
	require.NoError(t, err)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", retrieved.Title)
	assert.Equal(t, "keep me", retrieved.Description)
	assert.Equal(t, "Work", retrieved.Category)
	assert.Equal(t, int16(1), retrieved.Priority)
}

func TestUpdateTask_PriorityAlwaysWritten(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := &Task{Title: "Prioritized", Priority: 1}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)

	// An otherwise empty update still writes the priority.
	err = repo.UpdateTask(context.Background(), task.ID, TaskUpdate{Priority: 0})
	require.NoError(t, err)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, int16(0), retrieved.Priority)
	assert.Equal(t, "Prioritized", retrieved.Title)
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.UpdateTask(context.Background(), 999, TaskUpdate{Priority: 0})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteTask(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := &Task{Title: "Disposable"}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)

	err = repo.DeleteTask(context.Background(), task.ID)
	require.NoError(t, err)

	_, err = repo.GetTask(context.Background(), task.ID)
	assert.Error(t, err)

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.DeleteTask(context.Background(), 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateTask_CompletionFlag(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := &Task{Title: "Finish me", Priority: 3}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)

	done := true
	err = repo.UpdateTask(context.Background(), task.ID, TaskUpdate{IsComplete: &done, Priority: 3})
	require.NoError(t, err)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.IsComplete)
}
