package apperrors

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidCredentialsError is returned when a login attempt does not match
// any stored user. The message is deliberately identical for unknown email
// and wrong password.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "Invalid email or password"
}

func NewInvalidCredentialsError() *InvalidCredentialsError {
	return &InvalidCredentialsError{}
}

// PasswordMismatchError is returned when a registration's password and
// confirmation differ.
type PasswordMismatchError struct{}

func (e *PasswordMismatchError) Error() string {
	return "Passwords do not match"
}

func NewPasswordMismatchError() *PasswordMismatchError {
	return &PasswordMismatchError{}
}

// DuplicateEmailError is returned when a registration reuses an email
// already present in the user directory.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return "User with this email already exists"
}

func NewDuplicateEmailError(email string) *DuplicateEmailError {
	return &DuplicateEmailError{Email: email}
}
