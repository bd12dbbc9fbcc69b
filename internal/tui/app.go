package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/h0rv/bpmdash/internal/prefs"
	"github.com/h0rv/bpmdash/internal/store"
	"go.uber.org/zap"
)

// AppScreen represents the different screens in the application flow.
type AppScreen int

const (
	ScreenLoading AppScreen = iota
	ScreenDashboard
)

// AppModel is the root Bubble Tea model. It fetches snapshots from the source
// and hands them to the dashboard.
type AppModel struct {
	// Dependencies
	source metrics.Source
	store  *store.Store
	ctx    context.Context
	logger *zap.Logger

	// Current state
	currentScreen AppScreen
	dashboard     DashboardModel
	spinner       spinner.Model
	err           error
	loadingMsg    string
}

// NewAppModel creates the root model. The dashboard is built immediately so
// each panel reads its preference once, before the first fetch.
func NewAppModel(ctx context.Context, source metrics.Source, s *store.Store, ps prefs.Store, opts DashboardOptions) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return AppModel{
		source:        source,
		store:         s,
		ctx:           ctx,
		logger:        logger,
		currentScreen: ScreenLoading,
		dashboard:     NewDashboardModel(s, ps, opts),
		spinner:       sp,
		loadingMsg:    "Loading metrics...",
	}
}

// Init mounts the dashboard and starts the first fetch.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.dashboard.Init(),
		m.fetchSnapshot(),
	)
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" || (m.currentScreen != ScreenDashboard && msg.String() == "q") {
			return m, tea.Quit
		}

	case QuitMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		if m.currentScreen != ScreenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SnapshotLoadedMsg:
		m.store.SetSnapshot(msg.Snapshot)
		m.currentScreen = ScreenDashboard
		m.err = nil

	case ErrorMsg:
		m.logger.Warn("Failed to fetch metrics", zap.Error(msg.Err))
		// Keep showing stale data once we have some
		if !m.store.HasSnapshot() {
			m.err = msg.Err
			return m, nil
		}

	case RefreshMsg:
		return m, m.fetchSnapshot()
	}

	var cmd tea.Cmd
	var model tea.Model
	model, cmd = m.dashboard.Update(msg)
	if dm, ok := model.(DashboardModel); ok {
		m.dashboard = dm
	}
	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if m.currentScreen == ScreenLoading {
		return m.spinner.View() + " " + m.loadingMsg + "\n\nPress q to quit"
	}
	return m.dashboard.View()
}

// fetchSnapshot creates a command that fetches one snapshot.
func (m AppModel) fetchSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.source.Fetch(m.ctx)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to fetch metrics: %w", err)}
		}
		return SnapshotLoadedMsg{Snapshot: snap}
	}
}
