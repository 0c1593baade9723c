package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ae-qualify/internal/types"
)

func strPtr(s string) *string { return &s }

func TestReduceCreateProjectActivates(t *testing.T) {
	state := types.NewDashboardState()
	project := types.NewProject("Federal HQ Reno", "")

	next := Reduce(state, CreateProject{Project: project})

	require.Len(t, next.Projects, 2)
	assert.Equal(t, project.ID, next.Projects[1].ID)
	assert.Equal(t, project.ID, next.ActiveProjectID)
	// Original state untouched.
	assert.Len(t, state.Projects, 1)
	assert.Equal(t, types.DefaultProjectID, state.ActiveProjectID)
}

func TestReduceUpdateProject(t *testing.T) {
	state := types.NewDashboardState()
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	next := Reduce(state, UpdateProject{
		ID:        types.DefaultProjectID,
		Name:      "Courthouse Annex",
		UpdatedAt: at,
	})

	assert.Equal(t, "Courthouse Annex", next.Projects[0].Name)
	assert.Equal(t, at, next.Projects[0].UpdatedAt)

	// Unknown id is a no-op.
	same := Reduce(state, UpdateProject{ID: "nope", Name: "x", UpdatedAt: at})
	assert.Equal(t, state.Projects[0].Name, same.Projects[0].Name)
}

func TestReduceDeleteLastProjectIsNoOp(t *testing.T) {
	state := types.NewDashboardState()

	next := Reduce(state, DeleteProject{ID: types.DefaultProjectID})

	require.Len(t, next.Projects, 1)
	assert.Equal(t, types.DefaultProjectID, next.Projects[0].ID)
	assert.Equal(t, types.DefaultProjectID, next.ActiveProjectID)
}

func TestReduceDeleteProjectCascadesAssets(t *testing.T) {
	state := types.NewDashboardState()
	project := types.NewProject("Federal HQ Reno", "")
	state = Reduce(state, CreateProject{Project: project})

	kept := types.NewUploadedAsset("keep_resume.pdf", 100, types.DefaultProjectID)
	doomed := types.NewUploadedAsset("doomed_resume.pdf", 100, project.ID)
	state = Reduce(state, AddAsset{Asset: kept})
	state = Reduce(state, AddAsset{Asset: doomed})

	next := Reduce(state, DeleteProject{ID: project.ID})

	require.Len(t, next.Projects, 1)
	require.Len(t, next.UploadedAssets, 1)
	assert.Equal(t, kept.ID, next.UploadedAssets[0].ID)
	// Active project was the deleted one; it falls back to the first remaining.
	assert.Equal(t, types.DefaultProjectID, next.ActiveProjectID)
}

func TestReduceDeleteInactiveProjectKeepsActive(t *testing.T) {
	state := types.NewDashboardState()
	a := types.NewProject("A", "")
	b := types.NewProject("B", "")
	state = Reduce(state, CreateProject{Project: a})
	state = Reduce(state, CreateProject{Project: b})

	next := Reduce(state, DeleteProject{ID: a.ID})

	assert.Equal(t, b.ID, next.ActiveProjectID)
	require.Len(t, next.Projects, 2)
}

func TestReduceRemoveAssetIdempotent(t *testing.T) {
	state := types.NewDashboardState()
	asset := types.NewUploadedAsset("resume.pdf", 100, "")
	state = Reduce(state, AddAsset{Asset: asset})

	once := Reduce(state, RemoveAsset{ID: asset.ID})
	twice := Reduce(once, RemoveAsset{ID: asset.ID})

	assert.Len(t, once.UploadedAssets, 0)
	assert.Len(t, twice.UploadedAssets, 0)
}

func TestReduceKeyPersonnelAddRemove(t *testing.T) {
	state := types.NewDashboardState()
	x := types.KeyPersonnel{ID: "kp-x", Name: "Sarah Mitchell"}
	y := types.KeyPersonnel{ID: "kp-y", Name: "James Chen"}

	state = Reduce(state, AddKeyPersonnel{Person: x})
	state = Reduce(state, AddKeyPersonnel{Person: y})
	state = Reduce(state, RemoveKeyPersonnel{ID: "kp-x"})

	require.Len(t, state.FormData.SF330PartI.KeyPersonnel, 1)
	assert.Equal(t, "kp-y", state.FormData.SF330PartI.KeyPersonnel[0].ID)
}

func TestReduceEmployeeByDisciplineLifecycle(t *testing.T) {
	state := types.NewDashboardState()
	row := types.EmployeeByDiscipline{ID: "d-1", FunctionCode: "02", Discipline: "Architect", EmployeeCount: 4}

	state = Reduce(state, AddEmployeeByDiscipline{Row: row})
	require.Len(t, state.FormData.SF330PartII.EmployeesByDiscipline, 1)

	row.EmployeeCount = 7
	state = Reduce(state, UpdateEmployeeByDiscipline{Row: row})
	assert.Equal(t, 7, state.FormData.SF330PartII.EmployeesByDiscipline[0].EmployeeCount)

	state = Reduce(state, RemoveEmployeeByDiscipline{ID: "d-1"})
	assert.Len(t, state.FormData.SF330PartII.EmployeesByDiscipline, 0)

	// Removing again is harmless.
	state = Reduce(state, RemoveEmployeeByDiscipline{ID: "d-1"})
	assert.Len(t, state.FormData.SF330PartII.EmployeesByDiscipline, 0)
}

func TestReduceUpdateFormPreservesDisjointFields(t *testing.T) {
	state := types.NewDashboardState()

	state = Reduce(state, UpdateForm{Patch: types.SF330PartIPatch{
		FirmName: strPtr("Mitchell & Associates"),
	}})
	state = Reduce(state, UpdateForm{Patch: types.SF330PartIPatch{
		City: strPtr("Washington"),
	}})

	assert.Equal(t, "Mitchell & Associates", state.FormData.SF330PartI.FirmName)
	assert.Equal(t, "Washington", state.FormData.SF330PartI.City)
	assert.Equal(t, "USA", state.FormData.SF330PartI.Country)
}

func TestReduceAutoFillDoesNotTouchOtherForms(t *testing.T) {
	state := types.NewDashboardState()
	state = Reduce(state, UpdateForm{Patch: types.SF254Patch{
		FirmName: strPtr("Acme Architects"),
	}})

	next := Reduce(state, AutoFillFromExtraction{Patch: types.SF330PartIIPatch{
		FirmName: strPtr("Mitchell & Associates Architects, PLLC"),
	}})

	assert.Equal(t, "Mitchell & Associates Architects, PLLC", next.FormData.SF330PartII.FirmName)
	assert.Equal(t, "Acme Architects", next.FormData.SF254.FirmName)
}

func TestReduceSetActiveFormAndLoading(t *testing.T) {
	state := types.NewDashboardState()

	state = Reduce(state, SetActiveForm{Form: types.FormTypeSF252})
	assert.Equal(t, types.FormTypeSF252, state.ActiveForm)

	state = Reduce(state, SetLoading{Loading: true})
	assert.True(t, state.IsLoading)
	state = Reduce(state, SetLoading{Loading: false})
	assert.False(t, state.IsLoading)
}

func TestReduceLoadPersistedStateReplacesWholesale(t *testing.T) {
	state := types.NewDashboardState()
	state = Reduce(state, UpdateForm{Patch: types.SF252Patch{
		ContractNumber: strPtr("W912DQ-20-C-1234"),
	}})

	loaded := types.NewDashboardState()
	loaded.ActiveForm = types.FormTypeSF255

	next := Reduce(state, LoadPersistedState{State: loaded})

	assert.Equal(t, types.FormTypeSF255, next.ActiveForm)
	assert.Empty(t, next.FormData.SF252.ContractNumber)
}

func TestReduceIsPure(t *testing.T) {
	state := types.NewDashboardState()
	state = Reduce(state, AddKeyPersonnel{Person: types.KeyPersonnel{ID: "kp-1", Name: "Sarah"}})

	before := len(state.FormData.SF330PartI.KeyPersonnel)
	_ = Reduce(state, AddKeyPersonnel{Person: types.KeyPersonnel{ID: "kp-2", Name: "James"}})
	_ = Reduce(state, RemoveKeyPersonnel{ID: "kp-1"})

	assert.Equal(t, before, len(state.FormData.SF330PartI.KeyPersonnel))
	assert.Equal(t, "kp-1", state.FormData.SF330PartI.KeyPersonnel[0].ID)
}
