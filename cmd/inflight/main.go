package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/inflight/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	providerID := flag.String("provider", "", "airline to track: spirit, american, delta (optional)")
	pollSeconds := flag.Int("poll", 0, "refresh interval in seconds (optional, defaults to 30s)")
	demoMode := flag.Bool("demo", false, "allow demo data when no portal is reachable")
	offline := flag.Bool("offline", false, "start in offline mode")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Provider:   *providerID,
		DemoMode:   *demoMode,
		Offline:    *offline,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "inflight: %v\n", err)
		return 1
	}
	return 0
}
