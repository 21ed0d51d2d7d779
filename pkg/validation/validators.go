package validation

import (
	"regexp"
	"strings"
	"time"

	"go-recruitment-ops/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, spaces, and common punctuation: . ' - /
	nameRegex = regexp.MustCompile(`^[\p{L} .'/-]+$`)

	// E164-like phone: optional +, digits and separators, 7-15 digits
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ]{7,20}$`)

	workExperienceCodes = buildVocabulary()
)

func buildVocabulary() map[string]bool {
	codes := make(map[string]bool, len(domain.WorkExperienceLevels)+len(domain.WorkExperienceNoLevels))
	for _, c := range domain.WorkExperienceLevels {
		codes[c] = true
	}
	for _, c := range domain.WorkExperienceNoLevels {
		codes[c] = true
	}
	return codes
}

// New returns a validator with the custom rules registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("work_experience", WorkExperience)
	_ = v.RegisterValidation("max_current_year", MaxCurrentYear)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// WorkExperience checks that every colon-delimited tag belongs to one of the
// two work-experience vocabularies
func WorkExperience(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	for _, tag := range strings.Split(val, ":") {
		if !workExperienceCodes[tag] {
			return false
		}
	}
	return true
}

// MaxCurrentYear validates that an integer field (year) does not exceed the current year
func MaxCurrentYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year <= int64(time.Now().Year())
}
