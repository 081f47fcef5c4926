package domain

import (
	"fmt"
	"strings"
)

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
)

// Violation describes a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the structured result of validating an input before any
// write happens. It unwraps to ErrInvalidInput so callers can match the
// whole class with errors.Is.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", violation.Field, violation.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (v Violations) Unwrap() error { return ErrInvalidInput }

// OrNil returns the violations as an error, or nil when there are none.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ValidateCampaignInput checks the writable campaign fields. It is run
// before both create and update writes.
func ValidateCampaignInput(title, description string, category CampaignCategory, goalAmount int64) Violations {
	var v Violations
	if strings.TrimSpace(title) == "" {
		v = append(v, Violation{Field: "title", Message: "title is required"})
	} else if len(title) > MaxTitleLen {
		v = append(v, Violation{Field: "title", Message: fmt.Sprintf("title cannot be more than %d characters", MaxTitleLen)})
	}
	if strings.TrimSpace(description) == "" {
		v = append(v, Violation{Field: "description", Message: "description is required"})
	} else if len(description) > MaxDescriptionLen {
		v = append(v, Violation{Field: "description", Message: fmt.Sprintf("description cannot be more than %d characters", MaxDescriptionLen)})
	}
	if !ValidCategory(category) {
		v = append(v, Violation{Field: "category", Message: "category must be one of health, education, disaster, other"})
	}
	if goalAmount <= 0 {
		v = append(v, Violation{Field: "goalAmount", Message: "goal amount must be at least 1"})
	}
	return v
}

// ValidateDonationInput checks the donation amount. The minimum unit is 1.
func ValidateDonationInput(amount int64) Violations {
	var v Violations
	if amount < 1 {
		v = append(v, Violation{Field: "amount", Message: "donation amount must be at least 1"})
	}
	return v
}

// ValidateRegistration checks the fields of a new account.
func ValidateRegistration(name, email, password string, role UserRole) Violations {
	var v Violations
	if strings.TrimSpace(name) == "" {
		v = append(v, Violation{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		v = append(v, Violation{Field: "email", Message: "a valid email is required"})
	}
	if len(password) < 6 {
		v = append(v, Violation{Field: "password", Message: "password must be at least 6 characters"})
	}
	if !ValidRole(role) {
		v = append(v, Violation{Field: "role", Message: "role must be organization or supporter"})
	}
	return v
}
