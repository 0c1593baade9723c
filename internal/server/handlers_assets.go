package server

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jonathan/ae-qualify/internal/autofill"
	"github.com/jonathan/ae-qualify/internal/ingestion"
	"github.com/jonathan/ae-qualify/internal/store"
	"github.com/jonathan/ae-qualify/internal/types"
)

// ---------------------------------------------------------------------
// Asset Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets := s.st.Snapshot().UploadedAssets
	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		filtered := make([]types.UploadedAsset, 0, len(assets))
		for _, a := range assets {
			if a.ProjectID == projectID {
				filtered = append(filtered, a)
			}
		}
		assets = filtered
	}
	s.jsonResponse(w, http.StatusOK, assets)
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	found := false
	for _, a := range s.st.Snapshot().UploadedAssets {
		if a.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.errorFromErr(w, &ErrAssetNotFound{ID: id})
		return
	}

	s.st.Dispatch(store.RemoveAsset{ID: id})
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// uploadFileResult is the per-file entry of the upload response.
type uploadFileResult struct {
	FileName string `json:"fileName"`
	AssetID  string `json:"assetId,omitempty"`
	Target   string `json:"target,omitempty"`
	Error    string `json:"error,omitempty"`
}

type uploadResponse struct {
	Results   []uploadFileResult `json:"results"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// handleUpload receives a multipart batch under the "files" field, extracts
// each document, and merges the extracted fields into the target forms.
// Files that fail validation or extraction are reported per file; one bad
// file never aborts the batch.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.cfg.MaxFileSizeMB) << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	files := r.MultipartForm.File["files"]
	if err := ingestion.ValidateBatch(len(files), s.cfg.MaxFilesPerBatch); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "files", Message: err.Error()})
		return
	}

	projectID := r.FormValue("projectId")
	if projectID == "" {
		projectID = s.st.Snapshot().ActiveProjectID
	}

	var forced types.FormKind
	if target := r.FormValue("target"); target != "" {
		kind, err := types.ParseFormKind(target)
		if err != nil {
			s.errorFromErr(w, &ErrValidation{Field: "target", Message: err.Error()})
			return
		}
		forced = kind
	}

	var resp uploadResponse
	for _, fh := range files {
		name := ingestion.SanitizeFileName(fh.Filename)

		if err := ingestion.ValidateFile(name, fh.Size, s.cfg.MaxFileSizeMB); err != nil {
			resp.Results = append(resp.Results, uploadFileResult{FileName: name, Error: err.Error()})
			continue
		}

		text, err := s.readUploadText(fh, name)
		if err != nil {
			resp.Results = append(resp.Results, uploadFileResult{FileName: name, Error: err.Error()})
			continue
		}

		input := autofill.FileInput{
			FileName:  name,
			Size:      fh.Size,
			ProjectID: projectID,
			Text:      text,
		}

		var outcome autofill.FileOutcome
		if forced != "" {
			outcome = s.filler.FillForForm(r.Context(), input, forced)
		} else {
			outcome = s.filler.Fill(r.Context(), input)
		}

		result := uploadFileResult{
			FileName: outcome.FileName,
			AssetID:  outcome.AssetID,
			Target:   string(outcome.Target),
		}
		if outcome.Err != nil {
			result.Error = outcome.Err.Error()
		}
		resp.Results = append(resp.Results, result)
	}

	for _, res := range resp.Results {
		if res.Error == "" {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// readUploadText reads one multipart file and converts it to plain text.
func (s *Server) readUploadText(fh *multipart.FileHeader, name string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", ingestion.NewUploadError(name, "could not open uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", ingestion.NewUploadError(name, "could not read uploaded file")
	}

	return ingestion.ExtractText(name, content)
}
