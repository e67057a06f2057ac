package portal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/five82/inflight/internal/cache"
	"github.com/five82/inflight/internal/payload"
	"github.com/five82/inflight/internal/provider"
)

// cacheTTL is how long a cached payload stays usable after capture.
const cacheTTL = time.Hour

// Source says where a refresh result's data came from.
type Source int

const (
	SourceLive Source = iota
	SourceCached
	SourceDemo
	SourceError
)

func (s Source) String() string {
	switch s {
	case SourceLive:
		return "connected"
	case SourceCached:
		return "cached"
	case SourceDemo:
		return "demo"
	default:
		return "error"
	}
}

// Result is what one refresh cycle resolves to. Refresh always returns a
// Result; network failure is a Source, not an error.
type Result struct {
	Provider  provider.Provider
	Status    payload.FlightStatus
	Source    Source
	Offline   bool
	Message   string
	FetchedAt time.Time
}

// Fetcher is the endpoint access the orchestrator needs; *Client
// implements it.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) (payload.Raw, error)
}

var _ Fetcher = (*Client)(nil)

// Orchestrator runs the probe-and-fallback protocol for one provider at a
// time.
type Orchestrator struct {
	client   Fetcher
	cache    *cache.Store
	online   func() bool
	demoMode bool
	now      func() time.Time
}

// NewOrchestrator wires the orchestrator. online reports the current
// network-reachability signal; demoMode marks the environment as eligible
// for demo fallback when every endpoint fails.
func NewOrchestrator(client Fetcher, store *cache.Store, online func() bool, demoMode bool) *Orchestrator {
	if online == nil {
		online = func() bool { return true }
	}
	return &Orchestrator{
		client:   client,
		cache:    store,
		online:   online,
		demoMode: demoMode,
		now:      time.Now,
	}
}

// Refresh runs one full fetch cycle for prov.
//
// Offline skips the network entirely: fresh cache wins, demo otherwise.
// Online probes each candidate URL strictly in order, one at a time — a
// live portal may reject request bursts, so this is a deliberate probing
// protocol, not a race. The first 2xx+JSON response wins, is written to
// the cache, and stops the probe. When every candidate fails the cycle
// falls back to fresh cache, then demo (when eligible), then a terminal
// not-connected Result for the error banner.
func (o *Orchestrator) Refresh(ctx context.Context, prov provider.Provider) Result {
	now := o.now()

	if !o.online() {
		if entry, ok := o.cache.Get(prov.ID); ok && entry.FreshAt(now, cacheTTL) {
			return Result{
				Provider:  prov,
				Status:    payload.Extract(entry.Payload),
				Source:    SourceCached,
				Offline:   true,
				Message:   "Showing cached flight data. You are currently offline.",
				FetchedAt: now,
			}
		}
		return o.demoResult(prov, now, true, "You are offline. Showing demo data.")
	}

	for _, url := range prov.URLs() {
		doc, err := o.client.FetchJSON(ctx, url)
		if err != nil {
			log.Printf("[portal] %s: attempt failed for %s: %v", prov.ID, url, err)
			continue
		}
		if err := o.cache.Put(prov.ID, doc); err != nil {
			log.Printf("[portal] %s: cache write failed: %v", prov.ID, err)
		}
		return Result{
			Provider:  prov,
			Status:    payload.Extract(doc),
			Source:    SourceLive,
			FetchedAt: now,
		}
	}

	if entry, ok := o.cache.Get(prov.ID); ok && entry.FreshAt(now, cacheTTL) {
		return Result{
			Provider:  prov,
			Status:    payload.Extract(entry.Payload),
			Source:    SourceCached,
			Message:   "Showing cached flight data; the portal is not answering.",
			FetchedAt: now,
		}
	}
	if o.demoMode || !o.online() {
		return o.demoResult(prov, now, false, "")
	}
	return Result{
		Provider: prov,
		Source:   SourceError,
		Message: fmt.Sprintf(
			"Unable to connect to %s WiFi. Make sure you are connected to the %s inflight WiFi network.",
			prov.Name, prov.Name),
		FetchedAt: now,
	}
}

func (o *Orchestrator) demoResult(prov provider.Provider, now time.Time, offline bool, msg string) Result {
	doc := payload.Raw(provider.DemoPayload(prov.ID))
	return Result{
		Provider:  prov,
		Status:    payload.Extract(doc),
		Source:    SourceDemo,
		Offline:   offline,
		Message:   msg,
		FetchedAt: now,
	}
}
