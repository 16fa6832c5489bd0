package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestTaskValidator_ValidateForm_Valid(t *testing.T) {
	tv := NewTaskValidator()

	form := domain.TaskForm{
		Title:       "Buy milk",
		Description: strPtr(""),
		Priority:    domain.PriorityHigh,
		Latitude:    floatPtr(51.5),
		Longitude:   floatPtr(0.12),
	}
	assert.NoError(t, tv.ValidateForm(form))
}

func TestTaskValidator_ValidateForm_TitleRequired(t *testing.T) {
	tv := NewTaskValidator()

	for _, title := range []string{"", "   ", "\t\n"} {
		err := tv.ValidateForm(domain.TaskForm{Title: title, Description: strPtr("")})
		require.Error(t, err)

		ve, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.NotEmpty(t, ve.GetFieldErrors("title"))
	}
}

func TestTaskValidator_ValidateForm_TitleLength(t *testing.T) {
	tv := NewTaskValidator()

	long := strings.Repeat("x", 256)
	err := tv.ValidateForm(domain.TaskForm{Title: long, Description: strPtr("")})
	require.Error(t, err)

	ok := tv.ValidateForm(domain.TaskForm{Title: strings.Repeat("x", 255), Description: strPtr("")})
	assert.NoError(t, ok)
}

func TestTaskValidator_ValidateForm_DescriptionRequired(t *testing.T) {
	tv := NewTaskValidator()

	err := tv.ValidateForm(domain.TaskForm{Title: "ok"})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, ve.GetFieldErrors("description"))
}

func TestTaskValidator_ValidateForm_Priority(t *testing.T) {
	tv := NewTaskValidator()

	err := tv.ValidateForm(domain.TaskForm{
		Title:       "ok",
		Description: strPtr(""),
		Priority:    domain.Priority(7),
	})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, ve.GetFieldErrors("priority"))
}

func TestTaskValidator_ValidateForm_CoordinateRanges(t *testing.T) {
	tv := NewTaskValidator()

	tests := []struct {
		name  string
		form  domain.TaskForm
		field string
	}{
		{"latitude too high", domain.TaskForm{Title: "ok", Description: strPtr(""), Latitude: floatPtr(90.1)}, "latitude"},
		{"latitude too low", domain.TaskForm{Title: "ok", Description: strPtr(""), Latitude: floatPtr(-90.1)}, "latitude"},
		{"longitude too high", domain.TaskForm{Title: "ok", Description: strPtr(""), Longitude: floatPtr(180.1)}, "longitude"},
		{"longitude too low", domain.TaskForm{Title: "ok", Description: strPtr(""), Longitude: floatPtr(-180.1)}, "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tv.ValidateForm(tt.form)
			require.Error(t, err)

			ve, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.NotEmpty(t, ve.GetFieldErrors(tt.field))
		})
	}

	// Boundary values pass.
	assert.NoError(t, tv.ValidateForm(domain.TaskForm{
		Title: "ok", Description: strPtr(""),
		Latitude: floatPtr(90), Longitude: floatPtr(-180),
	}))
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTaskID(1))
	assert.Error(t, tv.ValidateTaskID(0))
	assert.Error(t, tv.ValidateTaskID(-5))
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	tv := NewTaskValidator()

	title, err := tv.GetValidTitle("  padded  ")
	require.NoError(t, err)
	assert.Equal(t, "padded", title)

	_, err = tv.GetValidTitle("   ")
	assert.Error(t, err)
}
