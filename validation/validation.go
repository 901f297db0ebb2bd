package validation

import (
	"regexp"
	"strings"

	"symposium-portal/model"
)

// Result is the advisory validation outcome: IsValid is true iff the
// error list is empty.
type Result struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

var (
	nonDigits    = regexp.MustCompile(`\D`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,13}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateRegistration checks every field rule and collects one message
// per failure. Validation is advisory, nothing re-checks at the storage
// boundary.
func ValidateRegistration(reg model.Registration) Result {
	errs := []string{}

	if len(strings.TrimSpace(reg.Name)) < 2 {
		errs = append(errs, "full name must be at least 2 characters")
	}
	if len(strings.TrimSpace(reg.College)) < 2 {
		errs = append(errs, "college name is required")
	}
	if !reg.Department.IsValid() {
		errs = append(errs, "department selection is required")
	}
	if reg.Year == "" {
		errs = append(errs, "year is required")
	}
	if !phonePattern.MatchString(nonDigits.ReplaceAllString(reg.Phone, "")) {
		errs = append(errs, "valid phone number is required (10-13 digits)")
	}
	if !emailPattern.MatchString(reg.Email) {
		errs = append(errs, "valid email address is required")
	}
	if !reg.EventType.IsValid() {
		errs = append(errs, "event type selection is required")
	}
	if reg.EventName == "" {
		errs = append(errs, "event selection is required")
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// FormatPhoneNumber renders a 10-digit number as "NNNNN NNNNN" for
// display, anything else is returned untouched.
func FormatPhoneNumber(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	if len(cleaned) == 10 {
		return cleaned[:5] + " " + cleaned[5:]
	}
	return phone
}
