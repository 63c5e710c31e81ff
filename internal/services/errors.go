// Package services holds the error taxonomy shared by the service layer.
// Sentinel values let handlers translate failures into HTTP codes without
// inspecting messages: ErrNotFound maps to 404, ErrConflict to 409 and
// ErrForbidden to 403.
package services

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an operation is blocked by existing state,
// such as a brand already carrying the maximum number of active sales or a
// duplicate brand name.
var ErrConflict = errors.New("conflict")

// ErrForbidden is returned when the actor is not allowed to operate on a
// resource owned by someone else.
var ErrForbidden = errors.New("forbidden")

// ValidationError carries every field violation found in a submission, not
// just the first one.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, " ")
}
