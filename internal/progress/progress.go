// Package progress scores form completion against per-form field
// checklists. Percentages count required fields only; optional fields are
// reported but never move the score.
package progress

import (
	"math"
	"reflect"
	"strings"

	"github.com/jonathan/ae-qualify/internal/types"
)

// FieldStatus is one checklist field with its current fill state.
type FieldStatus struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Filled   bool   `json:"filled"`
}

// Report summarizes completion of one form surface.
type Report struct {
	Percentage          int           `json:"percentage"`
	FilledFields        int           `json:"filledFields"`
	TotalRequiredFields int           `json:"totalRequiredFields"`
	MissingFields       []FieldStatus `json:"missingFields"`
	AllFields           []FieldStatus `json:"allFields"`
}

// isFilled decides whether a field value counts toward completion. Strings
// must be non-blank after trimming; numbers always count, zero included;
// collections must be non-empty.
func isFilled(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map {
			return rv.Len() > 0
		}
		return true
	}
}

// Compute scores a field map against a checklist.
func Compute(values map[string]any, rules []FieldRule) Report {
	all := make([]FieldStatus, 0, len(rules))
	for _, r := range rules {
		all = append(all, FieldStatus{
			Field:    r.Field,
			Label:    r.Label,
			Required: r.Required,
			Filled:   isFilled(values[r.Field]),
		})
	}

	var required, filled int
	missing := []FieldStatus{}
	for _, f := range all {
		if !f.Required {
			continue
		}
		required++
		if f.Filled {
			filled++
		} else {
			missing = append(missing, f)
		}
	}

	return Report{
		Percentage:          percentage(filled, required),
		FilledFields:        filled,
		TotalRequiredFields: required,
		MissingFields:       missing,
		AllFields:           all,
	}
}

// percentage rounds to the nearest whole percent. A checklist with no
// required fields is vacuously complete.
func percentage(filled, required int) int {
	if required == 0 {
		return 100
	}
	return int(math.Round(float64(filled) / float64(required) * 100))
}

// ComputeSF330PartI scores SF330 Part I on its own.
func ComputeSF330PartI(d types.SF330PartIData) Report {
	return Compute(d.FieldMap(), SF330PartIFields)
}

// ComputeSF330PartII scores SF330 Part II on its own.
func ComputeSF330PartII(d types.SF330PartIIData) Report {
	return Compute(d.FieldMap(), SF330PartIIFields)
}

// ComputeSF330 scores the combined SF330 surface. Counts are summed across
// both parts before the percentage is recomputed, so the composite is not an
// average of the two part percentages.
func ComputeSF330(partI types.SF330PartIData, partII types.SF330PartIIData) Report {
	p1 := ComputeSF330PartI(partI)
	p2 := ComputeSF330PartII(partII)

	filled := p1.FilledFields + p2.FilledFields
	required := p1.TotalRequiredFields + p2.TotalRequiredFields

	return Report{
		Percentage:          percentage(filled, required),
		FilledFields:        filled,
		TotalRequiredFields: required,
		MissingFields:       append(append([]FieldStatus{}, p1.MissingFields...), p2.MissingFields...),
		AllFields:           append(append([]FieldStatus{}, p1.AllFields...), p2.AllFields...),
	}
}

// ComputeSF254 scores the SF254 questionnaire.
func ComputeSF254(d types.SF254Data) Report {
	return Compute(d.FieldMap(), SF254Fields)
}

// ComputeSF255 scores the SF255 project-specific questionnaire.
func ComputeSF255(d types.SF255Data) Report {
	return Compute(d.FieldMap(), SF255Fields)
}

// ComputeSF252 scores the SF252 contract form.
func ComputeSF252(d types.SF252Data) Report {
	return Compute(d.FieldMap(), SF252Fields)
}

// ComputeForm scores the form surface named by formType. Unknown surfaces
// report zero progress rather than an error so callers can render something.
func ComputeForm(formType types.FormType, data types.UnifiedFormData) Report {
	switch formType {
	case types.FormTypeSF330:
		return ComputeSF330(data.SF330PartI, data.SF330PartII)
	case types.FormTypeSF254:
		return ComputeSF254(data.SF254)
	case types.FormTypeSF255:
		return ComputeSF255(data.SF255)
	case types.FormTypeSF252:
		return ComputeSF252(data.SF252)
	default:
		return Report{MissingFields: []FieldStatus{}, AllFields: []FieldStatus{}}
	}
}
