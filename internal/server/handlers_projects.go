package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/ae-qualify/internal/ingestion"
	"github.com/jonathan/ae-qualify/internal/store"
	"github.com/jonathan/ae-qualify/internal/types"
)

// ---------------------------------------------------------------------
// Project Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.st.Snapshot().Projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "name", Message: err.Error()})
		return
	}

	project := types.NewProject(
		ingestion.SanitizeString(req.Name),
		ingestion.SanitizeString(req.Description),
	)
	s.st.Dispatch(store.CreateProject{Project: project})
	s.jsonResponse(w, http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.projectExists(id) {
		s.errorFromErr(w, &ErrProjectNotFound{ID: id})
		return
	}

	var req types.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "name", Message: err.Error()})
		return
	}

	s.st.Dispatch(store.UpdateProject{
		ID:          id,
		Name:        ingestion.SanitizeString(req.Name),
		Description: ingestion.SanitizeString(req.Description),
		UpdatedAt:   time.Now(),
	})

	for _, p := range s.st.Snapshot().Projects {
		if p.ID == id {
			s.jsonResponse(w, http.StatusOK, p)
			return
		}
	}
	s.errorFromErr(w, &ErrProjectNotFound{ID: id})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	state := s.st.Snapshot()

	found := false
	for _, p := range state.Projects {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.errorFromErr(w, &ErrProjectNotFound{ID: id})
		return
	}
	if len(state.Projects) <= 1 {
		s.errorFromErr(w, &ErrLastProject{})
		return
	}

	s.st.Dispatch(store.DeleteProject{ID: id})
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
