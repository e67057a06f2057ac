package portal

import "sync/atomic"

// Connectivity is the process-wide network-reachability signal. The UI
// flips it (a terminal has no browser online event to subscribe to) and
// the orchestrator consults it at the start of every cycle.
type Connectivity struct {
	offline atomic.Bool
}

// NewConnectivity returns a signal that starts in the given state.
func NewConnectivity(online bool) *Connectivity {
	c := &Connectivity{}
	c.offline.Store(!online)
	return c
}

// Online reports whether the network is considered reachable.
func (c *Connectivity) Online() bool {
	return !c.offline.Load()
}

// SetOnline flips the signal and reports whether the value changed, so
// callers can re-run a refresh on transitions only.
func (c *Connectivity) SetOnline(online bool) bool {
	return c.offline.Swap(!online) != !online
}
