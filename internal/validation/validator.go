package validation

import (
	"strings"

	"taskmaster/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTitleLength checks if a title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	length := len(strings.TrimSpace(title))
	return length >= v.titleMinLength() && length <= v.titleMaxLength()
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsValidLatitude checks that a latitude lies within the geographic range
func (v *Validator) IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude checks that a longitude lies within the geographic range
func (v *Validator) IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// titleMinLength returns configured minimum title length or default
func (v *Validator) titleMinLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMinLength
	}
	return 1 // Default minimum
}

// titleMaxLength returns configured maximum title length or default
func (v *Validator) titleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255 // Default maximum
}
