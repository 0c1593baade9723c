// Package autofill orchestrates document extraction and merges the results
// into form state. One failed document never blocks the rest of a batch.
package autofill

import (
	"encoding/json"

	"github.com/jonathan/ae-qualify/internal/extraction"
	"github.com/jonathan/ae-qualify/internal/types"
)

// SniffTarget guesses the destination form from the field names present in
// a partial record. Contract identifiers win over firm-profile markers, and
// anything else lands on SF330 Part I. Kept only for extractors that do not
// tag their results; tagged targets always take precedence.
func SniffTarget(fields json.RawMessage) types.FormKind {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(fields, &probe); err != nil {
		return types.KindSF330PartI
	}

	if _, ok := probe["contractAmount"]; ok {
		return types.KindSF252
	}
	if _, ok := probe["deliveryOrderNumber"]; ok {
		return types.KindSF252
	}
	if _, ok := probe["employeesByDiscipline"]; ok {
		return types.KindSF330PartII
	}
	if _, ok := probe["yearEstablished"]; ok {
		return types.KindSF330PartII
	}
	return types.KindSF330PartI
}

// ResolveTarget returns the result's explicit target when present, falling
// back to field-shape sniffing otherwise.
func ResolveTarget(result extraction.Result) types.FormKind {
	if result.Target != "" {
		return result.Target
	}
	return SniffTarget(result.Fields)
}
