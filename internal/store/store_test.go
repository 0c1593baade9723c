package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ae-qualify/internal/types"
)

func TestStoreSnapshotIsIsolated(t *testing.T) {
	s := New(types.NewDashboardState())

	snap := s.Snapshot()
	snap.Projects[0].Name = "tampered"
	snap.FormData.SF330PartI.KeyPersonnel = append(snap.FormData.SF330PartI.KeyPersonnel,
		types.KeyPersonnel{ID: "rogue"})

	fresh := s.Snapshot()
	assert.NotEqual(t, "tampered", fresh.Projects[0].Name)
	assert.Len(t, fresh.FormData.SF330PartI.KeyPersonnel, 0)
}

func TestStoreDispatchNotifiesSubscribers(t *testing.T) {
	s := New(types.NewDashboardState())

	var got []types.DashboardState
	unsubscribe := s.Subscribe(func(st types.DashboardState) {
		got = append(got, st)
	})

	s.Dispatch(SetActiveForm{Form: types.FormTypeSF254})
	require.Len(t, got, 1)
	assert.Equal(t, types.FormTypeSF254, got[0].ActiveForm)

	unsubscribe()
	s.Dispatch(SetActiveForm{Form: types.FormTypeSF255})
	assert.Len(t, got, 1)

	// A second unsubscribe call is harmless.
	unsubscribe()
}

func TestStoreSubscriberGetsCopy(t *testing.T) {
	s := New(types.NewDashboardState())

	s.Subscribe(func(st types.DashboardState) {
		st.Projects[0].Name = "tampered"
	})
	s.Dispatch(SetLoading{Loading: true})

	assert.NotEqual(t, "tampered", s.Snapshot().Projects[0].Name)
}

func TestStoreCloseStopsDispatch(t *testing.T) {
	s := New(types.NewDashboardState())
	s.Close()

	s.Dispatch(SetActiveForm{Form: types.FormTypeSF252})
	assert.Equal(t, types.FormTypeSF330, s.Snapshot().ActiveForm)
}

func TestStoreConcurrentDispatch(t *testing.T) {
	s := New(types.NewDashboardState())

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			s.Dispatch(AddKeyPersonnel{Person: types.KeyPersonnel{ID: uuid.NewString(), Name: "worker"}})
		}()
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().FormData.SF330PartI.KeyPersonnel, workers)
}
