package session

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

const minPasswordLength = 6

// SignUpInput holds parameters for account registration.
type SignUpInput struct {
	Email       string
	Password    string
	FullName    string
	BadgeNumber *string
	Department  *string
	Role        string
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateCredentials(i.Email, i.Password)...)

	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	} else if len(i.FullName) > 255 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}

	if i.Role != "" && !domain.Role(i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of officer, investigator, supervisor, admin"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i SignUpInput) metadata() domain.SignUpMetadata {
	role := domain.RoleOfficer
	if i.Role != "" {
		role = domain.Role(i.Role)
	}
	return domain.SignUpMetadata{
		FullName:    strings.TrimSpace(i.FullName),
		BadgeNumber: i.BadgeNumber,
		Department:  i.Department,
		Role:        role,
	}
}

// SignInInput holds credentials for password sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	if errs := validateCredentials(i.Email, i.Password); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateCredentials(email, password string) []domain.FieldError {
	var errs []domain.FieldError

	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	return errs
}
