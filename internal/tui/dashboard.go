package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/h0rv/bpmdash/internal/prefs"
	"github.com/h0rv/bpmdash/internal/store"
	"go.uber.org/zap"
)

// Layout constants
const (
	defaultWidth       = 80
	defaultChartHeight = 12
	sideBySideWidth    = 110 // Minimum width for two charts per row
	summaryCardWidth   = 22
)

// DashboardOptions configure a DashboardModel.
type DashboardOptions struct {
	ChartHeight int      // Rows per chart region, defaultChartHeight when zero
	Roles       []string // Viewer roles, used to prune the view menu
	Logger      *zap.Logger
}

// DashboardModel shows the summary cards, the three chart panels and the
// location table for the snapshot held in the store.
type DashboardModel struct {
	// Dependencies
	store  *store.Store
	logger *zap.Logger

	// Chart slots
	parts     *ChartPanel[domain.PartsChartData]
	locations *ChartPanel[domain.LocationChartData]
	defects   *ChartPanel[domain.DefectChartData]
	panels    []Panel
	focus     int

	// UI components
	keymap      KeyMap
	help        HelpModel
	filterInput textinput.Model

	// View state
	menu        []MenuItem
	views       []View
	view        View
	width       int
	height      int
	chartHeight int
	filterMode  bool
	filterText  string
	errorToast  string
}

// NewDashboardModel creates the dashboard. Each panel reads its chart type
// from ps here, once.
func NewDashboardModel(s *store.Store, ps prefs.Store, opts DashboardOptions) DashboardModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	chartHeight := opts.ChartHeight
	if chartHeight <= 0 {
		chartHeight = defaultChartHeight
	}

	ti := textinput.New()
	ti.Placeholder = "Filter locations..."
	ti.Prompt = "/ "

	menu := PruneMenu(DefaultMenu(), opts.Roles)
	views := MenuTargets(menu)
	view := ViewCharts
	if len(views) > 0 && !containsView(views, ViewCharts) {
		view = views[0]
	}

	m := DashboardModel{
		store:       s,
		logger:      logger.Named("dashboard"),
		parts:       NewPartsPanel(ps),
		locations:   NewLocationPanel(ps),
		defects:     NewDefectPanel(ps),
		keymap:      DefaultKeyMap(),
		help:        NewHelpModel(DefaultKeyMap()),
		filterInput: ti,
		menu:        menu,
		views:       views,
		view:        view,
		chartHeight: chartHeight,
	}
	m.panels = []Panel{m.parts, m.locations, m.defects}
	m.loadData()
	return m
}

func containsView(views []View, v View) bool {
	for _, candidate := range views {
		if candidate == v {
			return true
		}
	}
	return false
}

// Init persists every panel's chart type and asks for the window size.
func (m DashboardModel) Init() tea.Cmd {
	for _, p := range m.panels {
		p.Mount()
	}
	return tea.WindowSize()
}

// loadData copies the store's datasets into the panels.
func (m *DashboardModel) loadData() {
	m.parts.SetData(m.store.Parts())
	m.locations.SetData(m.store.Locations())
	m.defects.SetData(m.store.Defects())
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SnapshotLoadedMsg:
		m.errorToast = ""
		(&m).loadData()
		return m, nil

	case ErrorMsg:
		m.errorToast = fmt.Sprintf("Refresh failed: %v", msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter mode swallows everything but apply/cancel
	if m.filterMode {
		switch {
		case key.Matches(msg, m.keymap.ApplyFilter):
			m.filterMode = false
			m.filterText = m.filterInput.Value()
			m.filterInput.Blur()
			return m, nil
		case key.Matches(msg, m.keymap.CancelFilter):
			m.filterMode = false
			m.filterInput.SetValue(m.filterText)
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		if m.view == ViewHelp {
			m.view = ViewCharts
		} else {
			m.view = ViewHelp
		}
		return m, nil
	case key.Matches(msg, m.keymap.NextView):
		(&m).nextView()
		return m, nil
	case key.Matches(msg, m.keymap.Refresh):
		return m, func() tea.Msg { return RefreshMsg{} }
	}

	switch m.view {
	case ViewCharts:
		(&m).handleChartKeys(msg)
	case ViewLocations:
		if key.Matches(msg, m.keymap.Filter) {
			m.filterMode = true
			cmd := m.filterInput.Focus()
			return m, cmd
		}
	}
	return m, nil
}

func (m *DashboardModel) handleChartKeys(msg tea.KeyMsg) {
	panel := m.panels[m.focus]
	switch {
	case key.Matches(msg, m.keymap.NextPanel):
		m.focus = (m.focus + 1) % len(m.panels)
	case key.Matches(msg, m.keymap.PrevPanel):
		m.focus = (m.focus - 1 + len(m.panels)) % len(m.panels)
	case key.Matches(msg, m.keymap.Left):
		panel.MoveCursor(-1)
	case key.Matches(msg, m.keymap.Right):
		panel.MoveCursor(1)
	case key.Matches(msg, m.keymap.CycleType):
		m.selectChartType(panel.ChartType().Next())
	case key.Matches(msg, m.keymap.Bar):
		m.selectChartType(domain.ChartBar)
	case key.Matches(msg, m.keymap.Line):
		m.selectChartType(domain.ChartLine)
	case key.Matches(msg, m.keymap.Area):
		m.selectChartType(domain.ChartArea)
	case key.Matches(msg, m.keymap.Pie):
		m.selectChartType(domain.ChartPie)
	}
}

// selectChartType routes a selection through the focused panel's container.
func (m *DashboardModel) selectChartType(t domain.ChartType) {
	panel := m.panels[m.focus]
	if panel.Props(0, 0, true).Select(t) {
		m.logger.Debug("Chart type changed",
			zap.String("key", panel.Key()),
			zap.String("type", string(t)))
	}
}

func (m *DashboardModel) nextView() {
	if len(m.views) == 0 {
		return
	}
	for i, v := range m.views {
		if v == m.view {
			m.view = m.views[(i+1)%len(m.views)]
			return
		}
	}
	m.view = m.views[0]
}

// Focused returns the panel that receives chart keys.
func (m DashboardModel) Focused() Panel {
	return m.panels[m.focus]
}

// CurrentView returns the active view.
func (m DashboardModel) CurrentView() View {
	return m.view
}

// View renders the dashboard
func (m DashboardModel) View() string {
	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	sections := []string{
		m.renderHeader(width),
		m.renderMenu(),
	}

	var body string
	switch m.view {
	case ViewCharts:
		body = lipgloss.JoinVertical(lipgloss.Left, m.renderSummary(), m.renderCharts(width))
	case ViewLocations:
		body = m.renderLocations(width)
	case ViewPreferences:
		body = m.renderPreferences()
	case ViewHelp:
		body = m.help.View(width)
	}
	sections = append(sections, body)

	footer := HelpStyle.Render(m.help.ShortView(width))
	if m.errorToast != "" {
		footer = ErrorStyle.Render(m.errorToast)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title on the left and the snapshot time on the right.
func (m DashboardModel) renderHeader(width int) string {
	title := "BPM Dashboard"
	status := "no data"
	if m.store.HasSnapshot() {
		status = "updated " + m.store.FetchedAt().Format("2006-01-02 15:04:05")
	}

	padding := width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if padding < 1 {
		padding = 1
	}
	return TitleStyle.Render(title) + strings.Repeat(" ", padding) + dimStyle.Render(status)
}

// renderMenu renders the visible views as tabs.
func (m DashboardModel) renderMenu() string {
	var tabs []string
	var walk func(items []MenuItem)
	walk = func(items []MenuItem) {
		for _, item := range items {
			if item.Target != ViewNone {
				if item.Target == m.view {
					tabs = append(tabs, SelectedItemStyle.Render("["+item.Title+"]"))
				} else {
					tabs = append(tabs, NormalItemStyle.Render(" "+item.Title+" "))
				}
			}
			walk(item.Children)
		}
	}
	walk(m.menu)
	return strings.Join(tabs, " ")
}

func (m DashboardModel) renderSummary() string {
	summary, err := m.store.Summary()
	if err != nil {
		return dimStyle.Render("Waiting for metrics...")
	}

	cards := []string{
		summaryCard("Total Requests", fmt.Sprintf("%d", summary.TotalRequests)),
		summaryCard("Open Requests", fmt.Sprintf("%d", summary.OpenRequests)),
		summaryCard("Completed PRCs", fmt.Sprintf("%d", summary.CompletedPRCs)),
		summaryCard("Avg Cycle Time", fmt.Sprintf("%.1f h", summary.AvgCycleTimeHours)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func summaryCard(label, value string) string {
	return cardStyle.Width(summaryCardWidth).Render(
		dimStyle.Render(label) + "\n" + cardValueStyle.Render(value),
	)
}

// renderCharts lays the panels out two per row on wide terminals, one per row otherwise.
func (m DashboardModel) renderCharts(width int) string {
	perRow := 1
	if width >= sideBySideWidth {
		perRow = 2
	}
	panelWidth := width / perRow

	var rows []string
	for start := 0; start < len(m.panels); start += perRow {
		var row []string
		for i := start; i < start+perRow && i < len(m.panels); i++ {
			row = append(row, m.panels[i].View(panelWidth, m.chartHeight, i == m.focus))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

var locationHeaders = [metrics.MaxLocationDepth]string{"Site", "Building", "Floor", "Zone", "Station"}

// renderLocations renders the flattened location hierarchy as a table.
func (m DashboardModel) renderLocations(width int) string {
	colWidth := width / metrics.MaxLocationDepth
	if colWidth < 8 {
		colWidth = 8
	}
	cell := func(s string) string {
		s = fitLabel(s, colWidth-1)
		return s + strings.Repeat(" ", colWidth-lipgloss.Width(s))
	}

	var lines []string
	if m.filterMode {
		lines = append(lines, m.filterInput.View())
	} else if m.filterText != "" {
		lines = append(lines, dimStyle.Render("filter: "+m.filterText))
	}

	var header strings.Builder
	for _, h := range locationHeaders {
		header.WriteString(cell(h))
	}
	lines = append(lines, PanelTitleStyle.Render(header.String()))

	rows := m.store.LocationRows(m.filterText)
	if len(rows) == 0 {
		lines = append(lines, dimStyle.Render("No locations match."))
	}
	for _, row := range rows {
		var line strings.Builder
		for _, level := range row.Levels {
			text := level.Code
			if level.Name != "" {
				text = level.Code + " " + level.Name
			}
			line.WriteString(cell(text))
		}
		lines = append(lines, NormalItemStyle.Render(line.String()))
	}
	return strings.Join(lines, "\n")
}

// renderPreferences lists each chart slot with its key and stored type.
func (m DashboardModel) renderPreferences() string {
	lines := []string{PanelTitleStyle.Render("Chart type preferences")}
	for _, p := range m.panels {
		lines = append(lines, fmt.Sprintf("%-28s %-32s %s", p.Title(), dimStyle.Render(p.Key()), SelectedItemStyle.Render(string(p.ChartType()))))
	}
	return strings.Join(lines, "\n")
}
