package persist

import (
	"github.com/jonathan/ae-qualify/internal/schemas"
)

// ValidateBlob checks a persisted blob against the shipped JSON Schema.
// Callers treat failures as advisory; reconciliation handles bad blobs.
func ValidateBlob(raw []byte) error {
	return schemas.ValidateStateBlob(raw)
}
