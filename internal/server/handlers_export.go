package server

import (
	"net/http"

	"github.com/jonathan/ae-qualify/internal/export"
)

// ---------------------------------------------------------------------
// Export Handler
// ---------------------------------------------------------------------

// handleExport renders one form as a downloadable PDF, or as HTML when
// ?format=html is given (useful for previews and for environments without
// Chrome installed).
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	form, ok := parseFormType(r.PathValue("form"))
	if !ok {
		s.errorFromErr(w, &ErrUnknownForm{Form: r.PathValue("form")})
		return
	}

	data := s.st.Snapshot().FormData

	if r.URL.Query().Get("format") == "html" {
		snap, err := export.Take(form, data)
		if err != nil {
			s.errorFromErr(w, err)
			return
		}
		html, err := export.RenderHTML(snap)
		if err != nil {
			s.errorFromErr(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
		return
	}

	pdf, fileName, err := export.ToPDF(r.Context(), form, data, s.cfg.PDFTimeout, s.cfg.Verbose)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
