package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/ae-qualify/internal/store"
	"github.com/jonathan/ae-qualify/internal/types"
)

// ---------------------------------------------------------------------
// State Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.st.Snapshot())
}

func (s *Server) handleSetActiveForm(w http.ResponseWriter, r *http.Request) {
	var req types.SetActiveFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "form", Message: err.Error()})
		return
	}

	s.st.Dispatch(store.SetActiveForm{Form: types.NormalizeFormType(req.Form)})
	s.jsonResponse(w, http.StatusOK, map[string]string{"activeForm": req.Form})
}

func (s *Server) handleSetActiveProject(w http.ResponseWriter, r *http.Request) {
	var req types.SetActiveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "id", Message: err.Error()})
		return
	}

	if req.ID != "" && !s.projectExists(req.ID) {
		s.errorFromErr(w, &ErrProjectNotFound{ID: req.ID})
		return
	}

	s.st.Dispatch(store.SetActiveProject{ID: req.ID})
	s.jsonResponse(w, http.StatusOK, map[string]string{"activeProjectId": req.ID})
}

func (s *Server) projectExists(id string) bool {
	for _, p := range s.st.Snapshot().Projects {
		if p.ID == id {
			return true
		}
	}
	return false
}
