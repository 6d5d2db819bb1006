// Package apperror defines the error taxonomy shared by every store.
//
// Each failure mode gets a sentinel error that callers check with
// errors.Is(). Stores raise these; UI-facing consumers catch them and
// translate to user-visible notifications. No sentinel here is fatal —
// every failure is scoped to the one operation that triggered it.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated — the operation requires a bound identity.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden — authenticated, but not the owning/authoring identity.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound — the referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailInUse — sign-up email collides with an existing account.
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials — sign-in could not be matched to an account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation — input failed a field-level rule before any mutation.
	ErrValidation = errors.New("validation error")
)

// AppError carries a sentinel plus a human-readable message. The Unwrap
// method is what makes errors.Is(err, ErrNotFound) work through the chain.
type AppError struct {
	Err     error  // sentinel from the list above
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotAuthenticated returns the error for an operation attempted with no
// signed-in user. The action reads like "create an achievement".
func NotAuthenticated(action string) *AppError {
	return &AppError{
		Err:     ErrNotAuthenticated,
		Message: fmt.Sprintf("you must be signed in to %s", action),
	}
}

// Forbidden returns the error for an authenticated caller acting on an
// entity they do not own.
func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func EmailInUse(email string) *AppError {
	return &AppError{
		Err:     ErrEmailInUse,
		Message: fmt.Sprintf("email %s is already in use", email),
		Field:   "email",
	}
}

func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "invalid email or password",
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
