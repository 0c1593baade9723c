package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpdateProjectRequest is the payload for renaming a project.
type UpdateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// Validate validates the UpdateProjectRequest using the validator.
func (r *UpdateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SetActiveFormRequest selects the current form surface.
type SetActiveFormRequest struct {
	Form string `json:"form" validate:"required,oneof=SF330 SF254 SF255 SF252"`
}

// Validate validates the SetActiveFormRequest using the validator.
func (r *SetActiveFormRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SetActiveProjectRequest reassigns the active project. An empty ID clears
// the selection; existence of the id is the caller's responsibility.
type SetActiveProjectRequest struct {
	ID string `json:"id" validate:"omitempty,max=64"`
}

// Validate validates the SetActiveProjectRequest using the validator.
func (r *SetActiveProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
