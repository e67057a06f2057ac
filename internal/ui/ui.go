package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	if opts.Orchestrator == nil || opts.Store == nil || opts.Connectivity == nil {
		return fmt.Errorf("ui requires an orchestrator, a store, and a connectivity signal")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	program := tea.NewProgram(
		NewModel(opts),
		tea.WithContext(opts.Context),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		// Context cancellation (SIGINT/SIGTERM) is a clean shutdown.
		if opts.Context.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
