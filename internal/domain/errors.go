package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected field of an incoming record.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

// Invalid is shorthand for a ValidationError on field.
func Invalid(field, msg string) error {
	return ValidationError{Field: field, Msg: msg}
}

type NotFoundError struct {
	Resource string
	ID       int64
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

type ConflictError struct {
	Resource string
	Err      error
}

func (e ConflictError) Error() string {
	if e.Resource == "" {
		return "conflict"
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

func (e ConflictError) Unwrap() error { return e.Err }

// InternalError hides storage failures from API callers while keeping the cause.
type InternalError struct {
	Op  string
	Err error
}

func (e InternalError) Error() string {
	if e.Op == "" {
		return "internal error"
	}
	return e.Op + " failed"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}
