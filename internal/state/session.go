package state

import (
	"sync"

	"github.com/five82/inflight/internal/provider"
)

// Session holds the currently selected provider. It is the one piece of
// mutable selection state shared by the scheduled poller and the UI;
// switching providers here (plus a Store.Begin) is what retires
// refreshes still in flight for the old airline.
type Session struct {
	mu   sync.RWMutex
	prov provider.Provider
}

// NewSession starts a session on the given provider.
func NewSession(p provider.Provider) *Session {
	return &Session{prov: p}
}

// Provider returns the current selection.
func (s *Session) Provider() provider.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prov
}

// SetProvider switches the current selection.
func (s *Session) SetProvider(p provider.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prov = p
}
