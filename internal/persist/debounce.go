package persist

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jonathan/ae-qualify/internal/store"
	"github.com/jonathan/ae-qualify/internal/types"
)

// DefaultDebounce is the trailing-edge save delay. A burst of dispatches
// within the window produces a single write.
const DefaultDebounce = 500 * time.Millisecond

// Writer observes a store and persists its state, debounced. Save failures
// are logged and swallowed: persistence must never break an editing session.
type Writer struct {
	kv       KV
	st       *store.Store
	interval time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	unsubscribe func()
	closed      bool
}

// NewWriter creates a writer. An interval of 0 uses DefaultDebounce.
func NewWriter(kv KV, st *store.Store, interval time.Duration) *Writer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Writer{kv: kv, st: st, interval: interval}
}

// Attach subscribes to the store. Every dispatch re-arms the trailing
// timer; when it fires, the snapshot read at that moment is saved, so a
// burst of edits collapses into one write of the final state.
func (w *Writer) Attach() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unsubscribe != nil || w.closed {
		return
	}
	w.unsubscribe = w.st.Subscribe(func(types.DashboardState) {
		w.arm()
	})
}

func (w *Writer) arm() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.interval, w.save)
}

// save reads the latest snapshot and persists it.
func (w *Writer) save() {
	snapshot := w.st.Snapshot()
	if err := Save(context.Background(), w.kv, snapshot); err != nil {
		log.Printf("[PERSIST] Save failed: %v", err)
	}
}

// Flush cancels any pending timer and saves immediately.
func (w *Writer) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.save()
}

// Close detaches from the store and writes a final snapshot.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.save()
}
