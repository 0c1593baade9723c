// Package store holds the dashboard state tree and applies intents to it
// through a pure reduction function. It is the only place mutation of
// projects, assets, or form data is permitted.
package store

import (
	"time"

	"github.com/jonathan/ae-qualify/internal/types"
)

// Intent is a named request to transition state. The set of intents is
// closed: every mutation of the state tree corresponds to exactly one of the
// types below. Intents carry any ids or timestamps they need, so Reduce
// stays deterministic for a given (state, intent) pair.
type Intent interface {
	isIntent()
}

// SetActiveForm switches which form surface is current. No data mutation.
type SetActiveForm struct {
	Form types.FormType
}

// CreateProject appends a project and makes it active. Construct the project
// with types.NewProject so the id and timestamps are fresh.
type CreateProject struct {
	Project types.Project
}

// UpdateProject renames a project in place and bumps its updatedAt. A
// missing id is a silent no-op.
type UpdateProject struct {
	ID          string
	Name        string
	Description string
	UpdatedAt   time.Time
}

// DeleteProject removes a project and cascades removal of its assets.
// Deleting the sole remaining project leaves state unchanged. Deleting the
// active project reassigns active status to the first remaining project.
type DeleteProject struct {
	ID string
}

// SetActiveProject reassigns the active project id. The id is not checked
// for existence; that is the caller's responsibility. Empty clears it.
type SetActiveProject struct {
	ID string
}

// AddAsset appends an uploaded asset record.
type AddAsset struct {
	Asset types.UploadedAsset
}

// RemoveAsset drops the asset with the given id. Unknown ids are no-ops.
type RemoveAsset struct {
	ID string
}

// UpdateForm shallow-merges a partial field record into the form shape the
// patch targets. Fields absent from the patch are preserved unchanged.
type UpdateForm struct {
	Patch types.FormPatch
}

// AutoFillFromExtraction applies an extraction result to its target form.
// Merge semantics are identical to UpdateForm; the separate intent keeps the
// provenance of the change visible to observers.
type AutoFillFromExtraction struct {
	Patch types.FormPatch
}

// AddKeyPersonnel appends a Section E resume entry to SF330 Part I.
type AddKeyPersonnel struct {
	Person types.KeyPersonnel
}

// RemoveKeyPersonnel drops the Part I resume entry with the given id.
type RemoveKeyPersonnel struct {
	ID string
}

// AddExampleProject appends a Section F entry to SF330 Part I.
type AddExampleProject struct {
	Project types.ExampleProject
}

// RemoveExampleProject drops the Part I example project with the given id.
type RemoveExampleProject struct {
	ID string
}

// AddEmployeeByDiscipline appends a Block 9 row to SF330 Part II.
type AddEmployeeByDiscipline struct {
	Row types.EmployeeByDiscipline
}

// RemoveEmployeeByDiscipline drops the Block 9 row with the given id.
// Removing an already-removed id is a no-op.
type RemoveEmployeeByDiscipline struct {
	ID string
}

// UpdateEmployeeByDiscipline replaces the Block 9 row whose id matches the
// given row. The full replacement record is required, not a partial.
type UpdateEmployeeByDiscipline struct {
	Row types.EmployeeByDiscipline
}

// SetLoading toggles the UI-facing busy flag. Orthogonal to form data.
type SetLoading struct {
	Loading bool
}

// LoadPersistedState wholesale-replaces the state tree. Used exactly once at
// startup, after persist.Reconcile has normalized the blob.
type LoadPersistedState struct {
	State types.DashboardState
}

func (SetActiveForm) isIntent()              {}
func (CreateProject) isIntent()              {}
func (UpdateProject) isIntent()              {}
func (DeleteProject) isIntent()              {}
func (SetActiveProject) isIntent()           {}
func (AddAsset) isIntent()                   {}
func (RemoveAsset) isIntent()                {}
func (UpdateForm) isIntent()                 {}
func (AutoFillFromExtraction) isIntent()     {}
func (AddKeyPersonnel) isIntent()            {}
func (RemoveKeyPersonnel) isIntent()         {}
func (AddExampleProject) isIntent()          {}
func (RemoveExampleProject) isIntent()       {}
func (AddEmployeeByDiscipline) isIntent()    {}
func (RemoveEmployeeByDiscipline) isIntent() {}
func (UpdateEmployeeByDiscipline) isIntent() {}
func (SetLoading) isIntent()                 {}
func (LoadPersistedState) isIntent()         {}
