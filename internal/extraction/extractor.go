// Package extraction turns uploaded documents into partial form field
// records. An extractor names its target form explicitly; callers only fall
// back to shape sniffing when the target tag is absent.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/ae-qualify/internal/types"
)

// Extractor produces a partial form record from one document.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (Result, error)
	// Close releases any resources held by the extractor
	Close() error
}

// DocClass groups uploaded documents by what kind of content they carry.
type DocClass string

// Known document classes.
const (
	DocResume      DocClass = "resume"
	DocProject     DocClass = "project"
	DocCertificate DocClass = "certificate"
	DocContract    DocClass = "contract"
	DocOther       DocClass = "other"
)

// ClassifyDocument guesses the document class from filename substrings.
func ClassifyDocument(fileName string) DocClass {
	name := strings.ToLower(fileName)
	switch {
	case strings.Contains(name, "resume") || strings.Contains(name, "cv") || strings.Contains(name, "personnel"):
		return DocResume
	case strings.Contains(name, "project") || strings.Contains(name, "profile") || strings.Contains(name, "portfolio"):
		return DocProject
	case strings.Contains(name, "cert") || strings.Contains(name, "license") || strings.Contains(name, "firm"):
		return DocCertificate
	case strings.Contains(name, "contract") || strings.Contains(name, "sf252") || strings.Contains(name, "agreement"):
		return DocContract
	default:
		return DocOther
	}
}

// Document is one uploaded file handed to an extractor. Text may be empty
// when only the filename is available.
type Document struct {
	FileName string
	Text     string
}

// Result is the outcome of extracting one document. Target names the form
// the fields belong to; when empty, callers sniff the field shape instead.
// Fields is the raw partial record, decodable with types.DecodePatch.
type Result struct {
	Success    bool            `json:"success"`
	Target     types.FormKind  `json:"target,omitempty"`
	Fields     json.RawMessage `json:"fields"`
	Confidence float64         `json:"confidence"`
}

// Patch decodes the result's fields against its target form. The target
// must be set; use autofill.ResolveTarget first when it is not.
func (r Result) Patch() (types.FormPatch, error) {
	return types.DecodePatch(r.Target, r.Fields)
}
