package validation

import (
	"taskmaster/internal/domain"
)

// TaskValidator provides validation for task editor submissions.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateForm validates an editor form ahead of any persistence call.
// Title must be non-empty after trimming and the description field must
// be present on the form, though it may hold an empty string.
func (tv *TaskValidator) ValidateForm(form domain.TaskForm) error {
	validationError := NewValidationError()

	trimmedTitle := tv.validator.TrimAndValidateString(form.Title)
	if !tv.validator.IsNonEmptyString(trimmedTitle) {
		validationError.AddRequiredError("title")
		return validationError
	}
	if !tv.validator.IsValidTitleLength(trimmedTitle) {
		validationError.AddInvalidLengthError("title", trimmedTitle, 1, 255)
	}

	if form.Description == nil {
		validationError.AddRequiredError("description")
	}

	if !form.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", form.Priority, "unknown priority code")
	}

	if form.Latitude != nil && !tv.validator.IsValidLatitude(*form.Latitude) {
		validationError.AddInvalidRangeError("latitude", *form.Latitude, "must be between -90 and 90")
	}
	if form.Longitude != nil && !tv.validator.IsValidLongitude(*form.Longitude) {
		validationError.AddInvalidRangeError("longitude", *form.Longitude, "must be between -180 and 180")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTitle returns a cleaned title if the form would pass title
// validation.
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError := NewValidationError()
		validationError.AddRequiredError("title")
		return "", validationError
	}
	return trimmed, nil
}
