// Package state coordinates refresh results between the poller and the
// UI.
//
// Refreshes can overlap: the 30-second schedule, a manual refresh, and a
// provider switch all start independent cycles, and a slow early cycle
// can resolve after a fast later one. Each cycle takes a generation
// number when it starts; the store only applies results whose generation
// is still current, so a superseded cycle can never overwrite newer data.
package state

import (
	"sync"
	"time"

	"github.com/five82/inflight/internal/portal"
)

// Snapshot is the latest view available to the UI.
type Snapshot struct {
	Result      portal.Result
	HasResult   bool
	LastUpdated time.Time
}

// Store holds the snapshot and the refresh generation counter.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	latest   uint64
	applied  uint64
}

// Begin registers the start of a refresh cycle and returns its
// generation. Starting a new cycle (including a provider switch)
// supersedes every earlier one still in flight.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Apply stores a result for the given generation and reports whether it
// was taken. Results from superseded generations are dropped.
func (s *Store) Apply(gen uint64, res portal.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.latest || gen <= s.applied {
		return false
	}
	s.applied = gen
	s.snapshot = Snapshot{
		Result:      res,
		HasResult:   true,
		LastUpdated: time.Now(),
	}
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
