package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/five82/inflight/internal/portal"
	"github.com/five82/inflight/internal/state"
)

// startPoller schedules the recurring refresh. SkipIfStillRunning drops
// a tick that would overlap a refresh already in flight, and the store's
// generation counter handles the remaining overlap with manual
// refreshes. Returns the running cron for the caller to stop.
func startPoller(ctx context.Context, snapshots *state.Store, session *state.Session, orch *portal.Orchestrator, every time.Duration) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", every), func() {
		if ctx.Err() != nil {
			return
		}
		gen := snapshots.Begin()
		res := orch.Refresh(ctx, session.Provider())
		if !snapshots.Apply(gen, res) {
			log.Printf("[poller] dropped superseded refresh for %s", res.Provider.ID)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule poll: %w", err)
	}

	c.Start()
	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c, nil
}
