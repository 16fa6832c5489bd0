package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/domain"
	"taskmaster/internal/repository/sqlite"
)

func setupEditor(t *testing.T) (EditorService, sqlite.Repository, func()) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	return NewEditorService(repo), repo, func() { repo.Close() }
}

func strPtr(s string) *string {
	return &s
}

func TestEditor_Create_AppliesDefaults(t *testing.T) {
	editor, _, cleanup := setupEditor(t)
	defer cleanup()

	form := domain.TaskForm{Title: "Buy milk", Description: strPtr("")}
	task, err := editor.Submit(context.Background(), form, nil)
	require.NoError(t, err)

	assert.Greater(t, task.ID, int64(0))
	assert.NotEmpty(t, task.UUID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, domain.CategoryOther, task.Category)
	assert.Equal(t, domain.PriorityNone, task.Priority)
	assert.Zero(t, task.Latitude)
	assert.Zero(t, task.Longitude)
	assert.False(t, task.IsComplete)
}

func TestEditor_Create_TrimsTitle(t *testing.T) {
	editor, _, cleanup := setupEditor(t)
	defer cleanup()

	form := domain.TaskForm{Title: "  padded  ", Description: strPtr("")}
	task, err := editor.Submit(context.Background(), form, nil)
	require.NoError(t, err)
	assert.Equal(t, "padded", task.Title)
}

func TestEditor_Create_RejectsInvalidForm(t *testing.T) {
	editor, repo, cleanup := setupEditor(t)
	defer cleanup()

	tests := []struct {
		name string
		form domain.TaskForm
	}{
		{"empty title", domain.TaskForm{Title: "   ", Description: strPtr("")}},
		{"missing description", domain.TaskForm{Title: "ok"}},
		{"invalid priority", domain.TaskForm{Title: "ok", Description: strPtr(""), Priority: domain.Priority(9)}},
		{"latitude out of range", domain.TaskForm{Title: "ok", Description: strPtr(""), Latitude: floatPtr(91)}},
		{"longitude out of range", domain.TaskForm{Title: "ok", Description: strPtr(""), Longitude: floatPtr(-181)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := editor.Submit(context.Background(), tt.form, nil)
			assert.Error(t, err)
		})
	}

	// Nothing was persisted.
	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestEditor_Update_Partial(t *testing.T) {
	editor, _, cleanup := setupEditor(t)
	defer cleanup()

	created, err := editor.Submit(context.Background(), domain.TaskForm{
		Title:       "Original",
		Description: strPtr("keep this"),
		Priority:    domain.PriorityHigh,
		Category:    strPtr(domain.CategoryWork),
	}, nil)
	require.NoError(t, err)

	// Only title and description are resubmitted; the category stays.
	updated, err := editor.Submit(context.Background(), domain.TaskForm{
		Title:       "Renamed",
		Description: strPtr("keep this"),
		Priority:    domain.PriorityHigh,
	}, created)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "keep this", updated.Description)
	assert.Equal(t, domain.CategoryWork, updated.Category)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
}

func TestEditor_Update_PriorityAlwaysOverwritten(t *testing.T) {
	editor, _, cleanup := setupEditor(t)
	defer cleanup()

	created, err := editor.Submit(context.Background(), domain.TaskForm{
		Title:       "Prioritized",
		Description: strPtr(""),
		Priority:    domain.PriorityHigh,
	}, nil)
	require.NoError(t, err)

	// A form with the zero priority clears the stored value.
	updated, err := editor.Submit(context.Background(), domain.TaskForm{
		Title:       "Prioritized",
		Description: strPtr(""),
	}, created)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityNone, updated.Priority)
}

func TestEditor_Update_SetsDueInstant(t *testing.T) {
	editor, _, cleanup := setupEditor(t)
	defer cleanup()

	created, err := editor.Submit(context.Background(), domain.TaskForm{
		Title:       "Schedule me",
		Description: strPtr(""),
	}, nil)
	require.NoError(t, err)

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	at := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)
	updated, err := editor.Submit(context.Background(), domain.TaskForm{
		Title:       "Schedule me",
		Description: strPtr(""),
		DueDate:     &due,
		DueTime:     &at,
	}, created)
	require.NoError(t, err)

	instant, ok := updated.DueInstant()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local).Unix(), instant.Unix())
}

func TestEditor_Update_InvalidFormLeavesTaskUntouched(t *testing.T) {
	editor, repo, cleanup := setupEditor(t)
	defer cleanup()

	created, err := editor.Submit(context.Background(), domain.TaskForm{
		Title:       "Stable",
		Description: strPtr("unchanged"),
	}, nil)
	require.NoError(t, err)

	_, err = editor.Submit(context.Background(), domain.TaskForm{Title: "   "}, created)
	assert.Error(t, err)

	stored, err := repo.GetTask(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stable", stored.Title)
	assert.Equal(t, "unchanged", stored.Description)
}

func floatPtr(f float64) *float64 {
	return &f
}
