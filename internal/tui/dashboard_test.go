package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/h0rv/bpmdash/internal/prefs"
	"github.com/h0rv/bpmdash/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStore creates a store holding the sample snapshot
func createTestStore() *store.Store {
	s := store.New(nil)
	snap := metrics.Sample()
	snap.FetchedAt = time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	s.SetSnapshot(snap)
	return s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m DashboardModel, keys ...string) (DashboardModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = model.(DashboardModel)
		require.True(t, ok)
	}
	return m, cmd
}

func TestDashboardModel_LoadsPanelsFromStore(t *testing.T) {
	m := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{})

	assert.Len(t, m.parts.Data(), 6)
	assert.Len(t, m.locations.Data(), 5)
	assert.Len(t, m.defects.Data(), 6)
	assert.Equal(t, prefs.KeyParts, m.Focused().Key())
}

func TestDashboardModel_InitMountsEveryPanel(t *testing.T) {
	ps := newRecordingStore()
	ps.values[prefs.KeyDefect] = domain.ChartPie
	m := NewDashboardModel(createTestStore(), ps, DashboardOptions{})

	m.Init()

	assert.ElementsMatch(t, []saved{
		{prefs.KeyParts, domain.ChartBar},
		{prefs.KeyLocation, domain.ChartBar},
		{prefs.KeyDefect, domain.ChartPie},
	}, ps.saves)
}

func TestDashboardModel_ChartTypeKeys(t *testing.T) {
	ps := newRecordingStore()
	m := NewDashboardModel(createTestStore(), ps, DashboardOptions{})

	m, _ = press(t, m, "2")
	assert.Equal(t, domain.ChartLine, m.parts.ChartType())
	assert.Equal(t, domain.ChartLine, ps.values[prefs.KeyParts])

	m, _ = press(t, m, "tab", "t")
	assert.Equal(t, domain.ChartLine, m.locations.ChartType())
	assert.Equal(t, domain.ChartLine, ps.values[prefs.KeyLocation])

	m, _ = press(t, m, "tab", "4")
	assert.Equal(t, domain.ChartPie, m.defects.ChartType())

	// Focus wraps around.
	m, _ = press(t, m, "tab")
	assert.Equal(t, prefs.KeyParts, m.Focused().Key())
	m, _ = press(t, m, "shift+tab")
	assert.Equal(t, prefs.KeyDefect, m.Focused().Key())
}

func TestDashboardModel_CursorAndTooltip(t *testing.T) {
	m := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{})
	m, _ = press(t, m, "right", "l")

	tip, ok := m.Focused().Tooltip()
	require.True(t, ok)
	assert.Equal(t, "P003 - Transom Reinforcement", tip.Label)

	m.width = 100
	m.height = 60
	assert.Contains(t, m.View(), "22 Completed PRCs")
}

func TestDashboardModel_Views(t *testing.T) {
	m := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{Roles: []string{RoleViewer}})
	assert.Equal(t, ViewCharts, m.CurrentView())

	m, _ = press(t, m, "v")
	assert.Equal(t, ViewLocations, m.CurrentView())
	m, _ = press(t, m, "v")
	assert.Equal(t, ViewHelp, m.CurrentView())
	m, _ = press(t, m, "v")
	assert.Equal(t, ViewCharts, m.CurrentView())

	m, _ = press(t, m, "?")
	assert.Equal(t, ViewHelp, m.CurrentView())
	m, _ = press(t, m, "?")
	assert.Equal(t, ViewCharts, m.CurrentView())
}

func TestDashboardModel_LocationFilter(t *testing.T) {
	m := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{Roles: []string{RoleViewer}})
	m.width = 150
	m.height = 40

	m, _ = press(t, m, "v", "/", "l", "a", "m", "enter")
	assert.Equal(t, "lam", m.filterText)

	view := m.View()
	assert.Contains(t, view, "LAM-1")
	assert.Contains(t, view, "LAM-2")
	assert.NotContains(t, view, "QC-1")

	m, _ = press(t, m, "/", "x", "esc")
	assert.Equal(t, "lam", m.filterText)
	assert.False(t, m.filterMode)
}

func TestDashboardModel_PreferencesViewNeedsAdmin(t *testing.T) {
	viewer := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{Roles: []string{RoleViewer}})
	assert.NotContains(t, viewer.views, ViewPreferences)

	admin := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{Roles: []string{RoleAdmin}})
	admin, _ = press(t, admin, "v", "v")
	require.Equal(t, ViewPreferences, admin.CurrentView())
	assert.Contains(t, admin.View(), prefs.KeyDefect)
}

func TestDashboardModel_RefreshAndErrors(t *testing.T) {
	m := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{})

	_, cmd := press(t, m, "r")
	require.NotNil(t, cmd)
	assert.Equal(t, RefreshMsg{}, cmd())

	model, _ := m.Update(ErrorMsg{Err: errors.New("boom")})
	m = model.(DashboardModel)
	assert.Contains(t, m.View(), "Refresh failed: boom")

	model, _ = m.Update(SnapshotLoadedMsg{})
	m = model.(DashboardModel)
	assert.Empty(t, m.errorToast)
}

func TestDashboardModel_WindowResize(t *testing.T) {
	m := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{})

	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = model.(DashboardModel)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestDashboardModel_View_NotPanic(t *testing.T) {
	empty := NewDashboardModel(store.New(nil), newRecordingStore(), DashboardOptions{})
	require.NotPanics(t, func() {
		view := empty.View()
		assert.Contains(t, view, "Waiting for metrics")
		assert.Contains(t, view, NoDataText)
	})

	m := NewDashboardModel(createTestStore(), newRecordingStore(), DashboardOptions{})
	for _, width := range []int{40, 80, 200} {
		m.width = width
		m.height = 50
		require.NotPanics(t, func() {
			view := m.View()
			assert.Contains(t, view, "Completed PRCs by Part")
			assert.Contains(t, view, "Defects by Code")
			assert.Contains(t, view, "211")
			assert.Contains(t, view, "2026-03-04 10:30:00")
		})
	}
}

// fakeSource serves canned results.
type fakeSource struct {
	snap metrics.Snapshot
	err  error
}

func (f fakeSource) Fetch(ctx context.Context) (metrics.Snapshot, error) {
	return f.snap, f.err
}

func TestAppModel_LoadsSnapshot(t *testing.T) {
	s := store.New(nil)
	app := NewAppModel(context.Background(), fakeSource{snap: metrics.Sample()}, s, newRecordingStore(), DashboardOptions{})
	assert.Contains(t, app.View(), "Loading metrics")

	msg := app.fetchSnapshot()()
	require.IsType(t, SnapshotLoadedMsg{}, msg)

	model, _ := app.Update(msg)
	app = model.(AppModel)
	assert.Equal(t, ScreenDashboard, app.currentScreen)
	assert.True(t, s.HasSnapshot())
	assert.Len(t, app.dashboard.defects.Data(), 6)
	assert.True(t, strings.Contains(app.View(), "Defects by Code"))
}

func TestAppModel_FetchError(t *testing.T) {
	app := NewAppModel(context.Background(), fakeSource{err: errors.New("unreachable")}, store.New(nil), newRecordingStore(), DashboardOptions{})

	msg := app.fetchSnapshot()()
	require.IsType(t, ErrorMsg{}, msg)

	model, _ := app.Update(msg)
	app = model.(AppModel)
	assert.Contains(t, app.View(), "unreachable")
}
