// Package persist saves and restores the dashboard state blob through a
// key-value boundary. The store never touches I/O itself; a Writer observes
// it and persists debounced snapshots.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/ae-qualify/internal/types"
)

// StateKey is the single key the dashboard state blob lives under.
const StateKey = "ae_qualify_dashboard_state"

// KV is the external persistence boundary: one JSON blob per key.
type KV interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Close() error
}

// Save serializes the state and writes it under StateKey.
func Save(ctx context.Context, kv KV, state types.DashboardState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := kv.Put(ctx, StateKey, raw); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// Load reads the persisted blob and reconciles it into a usable state. Load
// is total: a missing, corrupt, or partial blob still yields a valid state.
// Schema validation is advisory; violations are logged, never fatal.
func Load(ctx context.Context, kv KV) types.DashboardState {
	raw, err := kv.Get(ctx, StateKey)
	if err != nil {
		log.Printf("[PERSIST] Load failed, starting fresh: %v", err)
		return types.NewDashboardState()
	}
	if len(raw) == 0 {
		return types.NewDashboardState()
	}

	if err := ValidateBlob(raw); err != nil {
		log.Printf("[PERSIST] Persisted state does not match schema (continuing): %v", err)
	}

	return Reconcile(raw)
}
