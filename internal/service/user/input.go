package user

import (
	"unicode/utf8"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// CreateInput holds parameters for user creation.
type CreateInput struct {
	Username string
	Password string
}

// Validate validates the create input. Username is expected to be trimmed.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if n := utf8.RuneCountInString(i.Username); n < 3 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too short"})
	} else if n > 50 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	// bcrypt ignores bytes past 72.
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
