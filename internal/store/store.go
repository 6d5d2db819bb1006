// Package store implements the client-side data layer: three owning stores
// (identity, achievements, comments) over in-memory collections, persisted
// whole to a key-value storage port on every mutation.
//
// Control flow for every mutating operation is the same: check
// authorization, validate input, mutate the in-memory collection, then
// serialize the full collection back to storage. Validation and
// authorization run before any mutation, so a failed operation leaves both
// the collection and the persisted snapshot untouched.
//
// The stores are constructed once at application start and passed to
// consumers explicitly — there are no package-level singletons. Each store
// guards its collection with a mutex, so concurrent callers serialize;
// semantically the final persisted snapshot is still last-write-wins.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/achievement-society/internal/apperror"
)

// validate is shared by all stores. A validator.Validate caches struct
// metadata, so the package keeps a single instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError translates a validator error into the app taxonomy,
// reporting the first failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			return apperror.ValidationFailed(field, fmt.Sprintf("%s is required", field))
		case "email":
			return apperror.ValidationFailed(field, "invalid email format")
		case "url":
			return apperror.ValidationFailed(field, fmt.Sprintf("%s must be a valid URL", field))
		case "oneof":
			return apperror.ValidationFailed(field, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			return apperror.ValidationFailed(field, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return apperror.ValidationFailed("", err.Error())
}

// lowerFirst maps a struct field name to its json-ish form ("FullName" →
// "fullName") for error messages.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
