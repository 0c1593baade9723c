package persist

import (
	"encoding/json"
	"log"

	"github.com/jonathan/ae-qualify/internal/types"
)

// persistedState mirrors the blob layout loosely: form data stays raw so
// each form can be merged field-by-field against defaults, and scalar
// fields tolerate absence.
type persistedState struct {
	ActiveForm      string                `json:"activeForm"`
	Projects        []types.Project       `json:"projects"`
	ActiveProjectID string                `json:"activeProjectId"`
	UploadedAssets  []types.UploadedAsset `json:"uploadedAssets"`
	FormData        persistedFormData     `json:"formData"`
}

type persistedFormData struct {
	SF330PartI  json.RawMessage `json:"sf330PartI"`
	SF330PartII json.RawMessage `json:"sf330PartII"`
	SF254       json.RawMessage `json:"sf254"`
	SF255       json.RawMessage `json:"sf255"`
	SF252       json.RawMessage `json:"sf252"`
}

// Reconcile normalizes a persisted blob into a valid state tree. It is
// total: unparseable input falls back to defaults, missing form fields keep
// their default values, the project list is never left empty, assets always
// reference a project, and legacy active-form values are mapped forward.
func Reconcile(raw []byte) types.DashboardState {
	state := types.NewDashboardState()

	var blob persistedState
	if err := json.Unmarshal(raw, &blob); err != nil {
		log.Printf("[PERSIST] Unparseable persisted state, using defaults: %v", err)
		return state
	}

	state.ActiveForm = types.NormalizeFormType(blob.ActiveForm)

	if len(blob.Projects) > 0 {
		state.Projects = blob.Projects
	}
	state.ActiveProjectID = reconcileActiveProject(blob.ActiveProjectID, state.Projects)
	state.UploadedAssets = reconcileAssets(blob.UploadedAssets, state.Projects)

	mergeForm(types.KindSF330PartI, blob.FormData.SF330PartI, &state.FormData)
	mergeForm(types.KindSF330PartII, blob.FormData.SF330PartII, &state.FormData)
	mergeForm(types.KindSF254, blob.FormData.SF254, &state.FormData)
	mergeForm(types.KindSF255, blob.FormData.SF255, &state.FormData)
	mergeForm(types.KindSF252, blob.FormData.SF252, &state.FormData)

	// A session never resumes mid-load.
	state.IsLoading = false
	return state
}

// mergeForm applies a persisted form record onto defaults via the patch
// types, so fields absent from the blob keep their default values.
func mergeForm(kind types.FormKind, raw json.RawMessage, data *types.UnifiedFormData) {
	if len(raw) == 0 {
		return
	}
	patch, err := types.DecodePatch(kind, raw)
	if err != nil {
		log.Printf("[PERSIST] Skipping undecodable %s record: %v", kind, err)
		return
	}
	switch p := patch.(type) {
	case types.SF330PartIPatch:
		data.SF330PartI = p.Apply(data.SF330PartI)
	case types.SF330PartIIPatch:
		data.SF330PartII = p.Apply(data.SF330PartII)
	case types.SF254Patch:
		data.SF254 = p.Apply(data.SF254)
	case types.SF255Patch:
		data.SF255 = p.Apply(data.SF255)
	case types.SF252Patch:
		data.SF252 = p.Apply(data.SF252)
	}
}

func reconcileActiveProject(id string, projects []types.Project) string {
	for _, p := range projects {
		if p.ID == id {
			return id
		}
	}
	return projects[0].ID
}

func reconcileAssets(assets []types.UploadedAsset, projects []types.Project) []types.UploadedAsset {
	known := make(map[string]bool, len(projects))
	for _, p := range projects {
		known[p.ID] = true
	}

	out := make([]types.UploadedAsset, 0, len(assets))
	for _, a := range assets {
		if a.ID == "" {
			continue
		}
		if a.ProjectID == "" || !known[a.ProjectID] {
			a.ProjectID = projects[0].ID
		}
		out = append(out, a)
	}
	return out
}
