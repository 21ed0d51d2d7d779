package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Client fields
	"Company":      "Company",
	"Industry":     "Industry",
	"ContactName":  "Contact name",
	"ContactPhone": "Contact phone",
	"ContactEmail": "Contact email",

	// Project fields
	"ClientID":    "Client",
	"JobPosition": "Job position",
	"Headcount":   "Number of employees",

	// Candidate fields
	"Name":            "Name and surname",
	"BirthYear":       "Birth year",
	"LinkedIn":        "LinkedIn profile",
	"Mail":            "E-mail",
	"BusinessSkills":  "Business skills",
	"WorkExperience":  "Work experience",
	"OptimalPosition": "Optimal position",
	"TalentScore":     "Talent score",

	// Shortlist fields
	"Rating": "Rating",
	"Status": "Status",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid e-mail address", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL", label)
	case "numeric":
		return fmt.Sprintf("%s: must be a number", label)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and . ' - / are allowed", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number", label)
	case "work_experience":
		return fmt.Sprintf("%s: contains an unknown work-experience code", label)
	case "max_current_year":
		return fmt.Sprintf("%s: cannot be later than the current year", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
