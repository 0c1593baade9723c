package store

import (
	"github.com/jonathan/ae-qualify/internal/types"
)

// Reduce applies one intent to the state and returns the next state. It is
// pure: the input state is never mutated, and the same (state, intent) pair
// always yields the same result. Unknown or inapplicable intents return the
// state unchanged.
func Reduce(state types.DashboardState, intent Intent) types.DashboardState {
	switch it := intent.(type) {
	case SetActiveForm:
		next := cloneState(state)
		next.ActiveForm = it.Form
		return next

	case CreateProject:
		next := cloneState(state)
		next.Projects = append(next.Projects, it.Project)
		next.ActiveProjectID = it.Project.ID
		return next

	case UpdateProject:
		next := cloneState(state)
		for i := range next.Projects {
			if next.Projects[i].ID == it.ID {
				next.Projects[i].Name = it.Name
				next.Projects[i].Description = it.Description
				next.Projects[i].UpdatedAt = it.UpdatedAt
				break
			}
		}
		return next

	case DeleteProject:
		return reduceDeleteProject(state, it.ID)

	case SetActiveProject:
		next := cloneState(state)
		next.ActiveProjectID = it.ID
		return next

	case AddAsset:
		next := cloneState(state)
		next.UploadedAssets = append(next.UploadedAssets, it.Asset)
		return next

	case RemoveAsset:
		next := cloneState(state)
		kept := next.UploadedAssets[:0]
		for _, a := range next.UploadedAssets {
			if a.ID != it.ID {
				kept = append(kept, a)
			}
		}
		next.UploadedAssets = kept
		return next

	case UpdateForm:
		return reduceApplyPatch(state, it.Patch)

	case AutoFillFromExtraction:
		return reduceApplyPatch(state, it.Patch)

	case AddKeyPersonnel:
		next := cloneState(state)
		next.FormData.SF330PartI.KeyPersonnel = append(next.FormData.SF330PartI.KeyPersonnel, it.Person)
		return next

	case RemoveKeyPersonnel:
		next := cloneState(state)
		kept := next.FormData.SF330PartI.KeyPersonnel[:0]
		for _, kp := range next.FormData.SF330PartI.KeyPersonnel {
			if kp.ID != it.ID {
				kept = append(kept, kp)
			}
		}
		next.FormData.SF330PartI.KeyPersonnel = kept
		return next

	case AddExampleProject:
		next := cloneState(state)
		next.FormData.SF330PartI.ExampleProjects = append(next.FormData.SF330PartI.ExampleProjects, it.Project)
		return next

	case RemoveExampleProject:
		next := cloneState(state)
		kept := next.FormData.SF330PartI.ExampleProjects[:0]
		for _, ep := range next.FormData.SF330PartI.ExampleProjects {
			if ep.ID != it.ID {
				kept = append(kept, ep)
			}
		}
		next.FormData.SF330PartI.ExampleProjects = kept
		return next

	case AddEmployeeByDiscipline:
		next := cloneState(state)
		next.FormData.SF330PartII.EmployeesByDiscipline = append(next.FormData.SF330PartII.EmployeesByDiscipline, it.Row)
		return next

	case RemoveEmployeeByDiscipline:
		next := cloneState(state)
		kept := next.FormData.SF330PartII.EmployeesByDiscipline[:0]
		for _, row := range next.FormData.SF330PartII.EmployeesByDiscipline {
			if row.ID != it.ID {
				kept = append(kept, row)
			}
		}
		next.FormData.SF330PartII.EmployeesByDiscipline = kept
		return next

	case UpdateEmployeeByDiscipline:
		next := cloneState(state)
		for i := range next.FormData.SF330PartII.EmployeesByDiscipline {
			if next.FormData.SF330PartII.EmployeesByDiscipline[i].ID == it.Row.ID {
				next.FormData.SF330PartII.EmployeesByDiscipline[i] = it.Row
				break
			}
		}
		return next

	case SetLoading:
		next := cloneState(state)
		next.IsLoading = it.Loading
		return next

	case LoadPersistedState:
		return cloneState(it.State)

	default:
		return state
	}
}

// reduceDeleteProject removes a project, cascades removal of its assets, and
// reassigns the active project if the deleted one was active. The last
// remaining project cannot be deleted; the attempt is a no-op.
func reduceDeleteProject(state types.DashboardState, id string) types.DashboardState {
	if len(state.Projects) <= 1 {
		return state
	}
	found := false
	for _, p := range state.Projects {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return state
	}

	next := cloneState(state)

	projects := next.Projects[:0]
	for _, p := range next.Projects {
		if p.ID != id {
			projects = append(projects, p)
		}
	}
	next.Projects = projects

	assets := next.UploadedAssets[:0]
	for _, a := range next.UploadedAssets {
		if a.ProjectID != id {
			assets = append(assets, a)
		}
	}
	next.UploadedAssets = assets

	if next.ActiveProjectID == id {
		next.ActiveProjectID = next.Projects[0].ID
	}
	return next
}

// reduceApplyPatch merges a partial field record into the form the patch
// targets. A nil patch is a no-op.
func reduceApplyPatch(state types.DashboardState, patch types.FormPatch) types.DashboardState {
	if patch == nil {
		return state
	}
	next := cloneState(state)
	switch p := patch.(type) {
	case types.SF330PartIPatch:
		next.FormData.SF330PartI = p.Apply(next.FormData.SF330PartI)
	case types.SF330PartIIPatch:
		next.FormData.SF330PartII = p.Apply(next.FormData.SF330PartII)
	case types.SF254Patch:
		next.FormData.SF254 = p.Apply(next.FormData.SF254)
	case types.SF255Patch:
		next.FormData.SF255 = p.Apply(next.FormData.SF255)
	case types.SF252Patch:
		next.FormData.SF252 = p.Apply(next.FormData.SF252)
	}
	return next
}
