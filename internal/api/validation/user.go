package validation

import (
	"strings"

	"github.com/greengirl/dashboard/internal/profile"
)

// CreateUserRequest mirrors the fields of an admin create user request.
type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ValidateCreateUserRequest validates the fields of a create user request.
func ValidateCreateUserRequest(req CreateUserRequest) []FieldError {
	var errs []FieldError

	errs = append(errs, checkName("name", req.Name)...)
	errs = append(errs, checkEmail(req.Email, true)...)
	errs = append(errs, checkPassword(req.Password, true)...)
	errs = append(errs, ValidateRole(req.Role)...)

	return errs
}

// ValidateRole validates a role value.
func ValidateRole(role string) []FieldError {
	if role == "" {
		return []FieldError{{Field: "role", Message: "role is required"}}
	}
	if !profile.Role(role).Valid() {
		return []FieldError{{Field: "role", Message: `role must be "user" or "super-user"`}}
	}
	return nil
}

// ValidateProfileName validates a display name change.
func ValidateProfileName(name string) []FieldError {
	return checkName("name", name)
}

// CredentialsRequest mirrors the fields of a credentials change. Empty
// fields are left unchanged.
type CredentialsRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateCredentials requires at least one change and a matching password
// confirmation.
func ValidateCredentials(req CredentialsRequest) []FieldError {
	if req.Email == "" && req.Password == "" {
		return []FieldError{{Field: "body", Message: "email or password must be provided"}}
	}

	var errs []FieldError
	errs = append(errs, checkEmail(req.Email, false)...)
	errs = append(errs, checkPassword(req.Password, false)...)
	if req.Password != "" && req.Password != req.ConfirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	return errs
}

func checkEmail(email string, required bool) []FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		if required {
			return []FieldError{{Field: "email", Message: "email is required"}}
		}
		return nil
	}
	if !validEmail(email) {
		return []FieldError{{Field: "email", Message: "email must be a valid address"}}
	}
	return nil
}

func checkPassword(pw string, required bool) []FieldError {
	if pw == "" {
		if required {
			return []FieldError{{Field: "password", Message: "password is required"}}
		}
		return nil
	}
	if len(pw) < minPasswordLen {
		return []FieldError{{Field: "password", Message: "password must be at least 6 characters"}}
	}
	return nil
}
