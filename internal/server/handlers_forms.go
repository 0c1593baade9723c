package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/ae-qualify/internal/progress"
	"github.com/jonathan/ae-qualify/internal/store"
	"github.com/jonathan/ae-qualify/internal/types"
)

// ---------------------------------------------------------------------
// Form Handlers
// ---------------------------------------------------------------------

// formShape returns the concrete form struct for a kind.
func formShape(kind types.FormKind, data types.UnifiedFormData) any {
	switch kind {
	case types.KindSF330PartI:
		return data.SF330PartI
	case types.KindSF330PartII:
		return data.SF330PartII
	case types.KindSF254:
		return data.SF254
	case types.KindSF255:
		return data.SF255
	case types.KindSF252:
		return data.SF252
	default:
		return nil
	}
}

func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request) {
	kind, err := types.ParseFormKind(r.PathValue("kind"))
	if err != nil {
		s.errorFromErr(w, &ErrUnknownForm{Form: r.PathValue("kind")})
		return
	}
	s.jsonResponse(w, http.StatusOK, formShape(kind, s.st.Snapshot().FormData))
}

// handlePatchForm merges a partial field record into one form. Absent fields
// are preserved; present list fields replace wholesale.
func (s *Server) handlePatchForm(w http.ResponseWriter, r *http.Request) {
	kind, err := types.ParseFormKind(r.PathValue("kind"))
	if err != nil {
		s.errorFromErr(w, &ErrUnknownForm{Form: r.PathValue("kind")})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch, err := types.DecodePatch(kind, body)
	if err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	s.st.Dispatch(store.UpdateForm{Patch: patch})
	s.jsonResponse(w, http.StatusOK, formShape(kind, s.st.Snapshot().FormData))
}

// ---------------------------------------------------------------------
// SF330 Child Collection Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAddKeyPersonnel(w http.ResponseWriter, r *http.Request) {
	var person types.KeyPersonnel
	if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if person.ID == "" {
		person.ID = uuid.NewString()
	}

	s.st.Dispatch(store.AddKeyPersonnel{Person: person})
	s.jsonResponse(w, http.StatusCreated, person)
}

func (s *Server) handleRemoveKeyPersonnel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.st.Dispatch(store.RemoveKeyPersonnel{ID: id})
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleAddExampleProject(w http.ResponseWriter, r *http.Request) {
	var project types.ExampleProject
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	s.st.Dispatch(store.AddExampleProject{Project: project})
	s.jsonResponse(w, http.StatusCreated, project)
}

func (s *Server) handleRemoveExampleProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.st.Dispatch(store.RemoveExampleProject{ID: id})
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleAddEmployeeByDiscipline(w http.ResponseWriter, r *http.Request) {
	var row types.EmployeeByDiscipline
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}

	s.st.Dispatch(store.AddEmployeeByDiscipline{Row: row})
	s.jsonResponse(w, http.StatusCreated, row)
}

func (s *Server) handleUpdateEmployeeByDiscipline(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	found := false
	for _, row := range s.st.Snapshot().FormData.SF330PartII.EmployeesByDiscipline {
		if row.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Discipline row not found: "+id)
		return
	}

	var row types.EmployeeByDiscipline
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	row.ID = id

	s.st.Dispatch(store.UpdateEmployeeByDiscipline{Row: row})
	s.jsonResponse(w, http.StatusOK, row)
}

func (s *Server) handleRemoveEmployeeByDiscipline(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.st.Dispatch(store.RemoveEmployeeByDiscipline{ID: id})
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Progress Handlers
// ---------------------------------------------------------------------

func parseFormType(v string) (types.FormType, bool) {
	switch types.FormType(v) {
	case types.FormTypeSF330, types.FormTypeSF254, types.FormTypeSF255, types.FormTypeSF252:
		return types.FormType(v), true
	default:
		return "", false
	}
}

func (s *Server) handleAllProgress(w http.ResponseWriter, _ *http.Request) {
	data := s.st.Snapshot().FormData
	reports := map[string]progress.Report{
		string(types.FormTypeSF330): progress.ComputeForm(types.FormTypeSF330, data),
		string(types.FormTypeSF254): progress.ComputeForm(types.FormTypeSF254, data),
		string(types.FormTypeSF255): progress.ComputeForm(types.FormTypeSF255, data),
		string(types.FormTypeSF252): progress.ComputeForm(types.FormTypeSF252, data),
	}
	s.jsonResponse(w, http.StatusOK, reports)
}

func (s *Server) handleFormProgress(w http.ResponseWriter, r *http.Request) {
	form, ok := parseFormType(r.PathValue("form"))
	if !ok {
		s.errorFromErr(w, &ErrUnknownForm{Form: r.PathValue("form")})
		return
	}
	s.jsonResponse(w, http.StatusOK, progress.ComputeForm(form, s.st.Snapshot().FormData))
}
