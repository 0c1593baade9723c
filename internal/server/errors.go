// Package server provides the HTTP REST API for the qualification dashboard.
package server

import (
	"fmt"
	"net/http"
)

// ErrProjectNotFound indicates the project id does not exist in state.
type ErrProjectNotFound struct {
	ID string
}

func (e *ErrProjectNotFound) Error() string {
	return fmt.Sprintf("project not found: %s", e.ID)
}

// ErrAssetNotFound indicates the asset id does not exist in state.
type ErrAssetNotFound struct {
	ID string
}

func (e *ErrAssetNotFound) Error() string {
	return fmt.Sprintf("asset not found: %s", e.ID)
}

// ErrLastProject indicates an attempt to delete the only remaining project.
type ErrLastProject struct{}

func (e *ErrLastProject) Error() string {
	return "cannot delete the last remaining project"
}

// ErrUnknownForm indicates an unrecognized form identifier in the URL.
type ErrUnknownForm struct {
	Form string
}

func (e *ErrUnknownForm) Error() string {
	return fmt.Sprintf("unknown form: %s", e.Form)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrProjectNotFound, *ErrAssetNotFound:
		return http.StatusNotFound
	case *ErrLastProject:
		return http.StatusConflict
	case *ErrUnknownForm, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
