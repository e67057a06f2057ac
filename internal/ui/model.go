// Package ui renders the flight card in the terminal. It is the
// renderer collaborator: it receives finished FlightStatus records from
// the snapshot store and never formats raw payload values itself.
package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/inflight/internal/payload"
	"github.com/five82/inflight/internal/portal"
	"github.com/five82/inflight/internal/prefs"
	"github.com/five82/inflight/internal/provider"
	"github.com/five82/inflight/internal/state"
)

const (
	snapshotTick     = time.Second
	progressBarWidth = 44
)

type tickMsg time.Time

// refreshedMsg signals that a manually triggered refresh cycle resolved.
type refreshedMsg struct{}

// Options configure the UI runtime.
type Options struct {
	Context      context.Context
	Orchestrator *portal.Orchestrator
	Store        *state.Store
	Session      *state.Session
	Connectivity *portal.Connectivity
	Provider     provider.Provider
	PrefsPath    string
}

// Model is the Bubble Tea model for the flight card screen.
type Model struct {
	ctx   context.Context
	orch  *portal.Orchestrator
	store *state.Store
	sess  *state.Session
	conn  *portal.Connectivity

	prov      provider.Provider
	prefsPath string

	styles Styles
	bar    progress.Model
	spin   spinner.Model
	help   help.Model
	keys   keyMap

	snapshot   state.Snapshot
	lastGood   *payload.FlightStatus
	refreshing bool
	width      int
}

// NewModel builds the initial model for the given provider.
func NewModel(opts Options) Model {
	m := Model{
		ctx:       opts.Context,
		orch:      opts.Orchestrator,
		store:     opts.Store,
		sess:      opts.Session,
		conn:      opts.Connectivity,
		prov:      opts.Provider,
		prefsPath: opts.PrefsPath,
		help:      help.New(),
		keys:      newKeyMap(),
	}
	m.applyProviderTheme()
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	return m
}

func (m *Model) applyProviderTheme() {
	m.styles = newStyles(m.prov.Theme)
	m.bar = progress.New(
		progress.WithScaledGradient(m.prov.Theme.Primary, m.prov.Theme.Secondary),
		progress.WithWidth(progressBarWidth),
	)
}

// Init kicks off the snapshot tick and the first refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.refreshCmd(), m.spin.Tick)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(snapshotTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd runs one refresh cycle for the current provider. The
// generation is taken before the network work starts so a provider
// switch or newer cycle supersedes this one.
func (m Model) refreshCmd() tea.Cmd {
	orch, store, ctx, prov := m.orch, m.store, m.ctx, m.prov
	return func() tea.Msg {
		gen := store.Begin()
		res := orch.Refresh(ctx, prov)
		store.Apply(gen, res)
		return refreshedMsg{}
	}
}

// Update handles key presses, snapshot ticks, and refresh completions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.adoptSnapshot()
		return m, m.tick()

	case refreshedMsg:
		m.refreshing = false
		m.adoptSnapshot()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.refreshing = true
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Provider):
		m.prov = provider.Next(m.prov.ID)
		if m.sess != nil {
			m.sess.SetProvider(m.prov)
		}
		m.applyProviderTheme()
		m.lastGood = nil
		m.refreshing = true
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Provider: m.prov.ID}); err != nil {
			log.Printf("[ui] saving provider preference failed: %v", err)
		}
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Offline):
		// A transition in either direction re-runs the cycle at once:
		// back online means fetch live data, newly offline means fall
		// back to cache or demo.
		if m.conn.SetOnline(!m.conn.Online()) {
			m.refreshing = true
			return m, m.refreshCmd()
		}
		return m, nil
	}
	return m, nil
}

// adoptSnapshot pulls the latest store state into the model and keeps
// the last good record around so an error cycle does not blank the card.
func (m *Model) adoptSnapshot() {
	snap := m.store.Snapshot()
	if !snap.HasResult {
		return
	}
	m.snapshot = snap
	if snap.Result.Source != portal.SourceError {
		status := snap.Result.Status
		m.lastGood = &status
	}
}
