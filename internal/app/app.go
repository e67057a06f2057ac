// Package app is the composition root: it wires configuration,
// preferences, the portal orchestrator, the snapshot store, the poll
// schedule, and the UI into the running application.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/five82/inflight/internal/cache"
	"github.com/five82/inflight/internal/config"
	"github.com/five82/inflight/internal/portal"
	"github.com/five82/inflight/internal/prefs"
	"github.com/five82/inflight/internal/provider"
	"github.com/five82/inflight/internal/state"
	"github.com/five82/inflight/internal/ui"
)

// Options configure the application from the command line.
type Options struct {
	ConfigPath string
	PrefsPath  string
	Provider   string // overrides prefs and config when set
	PollEvery  int    // seconds; zero uses config
	DemoMode   bool   // force demo eligibility on
	Offline    bool   // start with the network treated as unreachable
}

// selectProvider picks the starting airline: an explicit flag wins, then
// the airline from last run, then config. The prefs file is hand-editable
// and best-effort, so a saved preference naming an airline this build does
// not know is logged and skipped rather than failing startup.
func selectProvider(cfg config.Config, saved prefs.Prefs, override string) (provider.Provider, error) {
	if override != "" {
		return provider.Get(override)
	}
	if saved.Provider != "" {
		prov, err := provider.Get(saved.Provider)
		if err == nil {
			return prov, nil
		}
		log.Printf("[app] ignoring saved provider preference: %v", err)
	}
	return provider.Get(cfg.Provider)
}

// Run boots the inflight TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if opts.DemoMode {
		cfg.DemoMode = true
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	prov, err := selectProvider(cfg, userPrefs, opts.Provider)
	if err != nil {
		return fmt.Errorf("select provider: %w", err)
	}

	store, err := cache.NewStore(cfg.CachePath)
	if err != nil {
		return fmt.Errorf("init cache store: %w", err)
	}

	client := portal.NewClient(time.Duration(cfg.TimeoutSeconds) * time.Second)
	conn := portal.NewConnectivity(!opts.Offline)
	orch := portal.NewOrchestrator(client, store, conn.Online, cfg.DemoMode)

	snapshots := &state.Store{}
	session := state.NewSession(prov)

	poller, err := startPoller(ctx, snapshots, session, orch, time.Duration(cfg.PollSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer poller.Stop()

	return ui.Run(ui.Options{
		Context:      ctx,
		Orchestrator: orch,
		Store:        snapshots,
		Session:      session,
		Connectivity: conn,
		Provider:     prov,
		PrefsPath:    opts.PrefsPath,
	})
}
