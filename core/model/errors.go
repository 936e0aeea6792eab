package model

import "fmt"

// The engine rejects invalid requests with one of the typed errors below.
// All are detected before any computation proceeds, so a failed request never
// yields a partial result. Each error names the request field it concerns so
// the API layer can surface a structured rejection.

// IncompleteProfileError signals that no usable load source was given for the
// requested mode: no archetype outside expert mode, or neither archetype nor
// packs in expert mode.
type IncompleteProfileError struct {
	ExpertMode bool
}

func (e *IncompleteProfileError) Error() string {
	if e.ExpertMode {
		return "expert mode requires at least one selected pack or an archetype baseline"
	}
	return "an archetype is required when expert mode is disabled"
}

// Field returns the request field the rejection concerns.
func (e *IncompleteProfileError) Field() string {
	if e.ExpertMode {
		return "packs"
	}
	return "archetype_id"
}

// UnknownPackError signals that a selected pack is not in the catalog.
type UnknownPackError struct {
	Group PackGroup
	Key   string
}

func (e *UnknownPackError) Error() string {
	return fmt.Sprintf("pack %q not found in group %s", e.Key, e.Group)
}

func (e *UnknownPackError) Field() string { return "packs" }

// UnknownCityError signals that the requested city has no solar yield entry.
type UnknownCityError struct {
	City string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("city %q not found in solar yield table", e.City)
}

func (e *UnknownCityError) Field() string { return "city" }

// InvalidInputError signals a malformed request field, such as a usage level
// outside the three defined values or a negative array size.
type InvalidInputError struct {
	Name   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

func (e *InvalidInputError) Field() string { return e.Name }

// FieldError is implemented by all request-validation errors.
type FieldError interface {
	error
	Field() string
}
