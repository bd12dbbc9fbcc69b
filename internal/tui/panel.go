package tui

import (
	"github.com/h0rv/bpmdash/internal/chart"
	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/prefs"
)

// Panel is the type-erased view of a ChartPanel the dashboard works with.
type Panel interface {
	Key() string
	Title() string
	ValueLabel() string
	ChartType() domain.ChartType
	SetChartType(t domain.ChartType)
	Mount()
	MoveCursor(delta int)
	Tooltip() (chart.Tooltip, bool)
	Chart() *chart.Chart
	ChartAs(t domain.ChartType) *chart.Chart
	Props(width, height int, focused bool) ContainerProps
	View(width, height int, focused bool) string
}

// PanelOptions describe one chart slot.
type PanelOptions[T chart.Datum] struct {
	Key         string // Preference key, unique per slot
	Title       string
	Description string
	ValueLabel  string // Unit shown in tooltips and exports
	DataKey     string
	Config      chart.Config[T]
}

// ChartPanel is one dashboard chart slot. Its chart type is read from the
// preference store once, at construction, and written back on mount and on
// every change.
type ChartPanel[T chart.Datum] struct {
	opts      PanelOptions[T]
	store     prefs.Store
	chartType domain.ChartType
	data      []T
	cursor    int
}

// NewChartPanel creates a panel and loads its chart type from store.
func NewChartPanel[T chart.Datum](store prefs.Store, opts PanelOptions[T]) *ChartPanel[T] {
	if opts.DataKey == "" {
		opts.DataKey = domain.FieldValue
	}
	return &ChartPanel[T]{
		opts:      opts,
		store:     store,
		chartType: store.Load(opts.Key, domain.DefaultChartType),
	}
}

// Key returns the panel's preference key.
func (p *ChartPanel[T]) Key() string { return p.opts.Key }

// Title returns the panel title.
func (p *ChartPanel[T]) Title() string { return p.opts.Title }

// ValueLabel returns the unit label of the plotted values.
func (p *ChartPanel[T]) ValueLabel() string { return p.opts.ValueLabel }

// ChartType returns the current chart type.
func (p *ChartPanel[T]) ChartType() domain.ChartType { return p.chartType }

// Mount persists the current selection. The dashboard calls it once when the
// panel is first shown.
func (p *ChartPanel[T]) Mount() {
	p.store.Save(p.opts.Key, p.chartType)
}

// SetChartType switches the chart type and persists it immediately.
// Unknown types are ignored.
func (p *ChartPanel[T]) SetChartType(t domain.ChartType) {
	if !t.Valid() {
		return
	}
	p.chartType = t
	p.store.Save(p.opts.Key, t)
}

// SetData replaces the dataset, keeping the cursor in range.
func (p *ChartPanel[T]) SetData(data []T) {
	p.data = data
	p.clampCursor()
}

// Data returns the current dataset.
func (p *ChartPanel[T]) Data() []T { return p.data }

// Cursor returns the index of the highlighted point.
func (p *ChartPanel[T]) Cursor() int { return p.cursor }

// MoveCursor moves the point cursor by delta, stopping at either end.
func (p *ChartPanel[T]) MoveCursor(delta int) {
	p.cursor += delta
	p.clampCursor()
}

func (p *ChartPanel[T]) clampCursor() {
	if p.cursor >= len(p.data) {
		p.cursor = len(p.data) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Chart renders the current dataset with the current chart type.
func (p *ChartPanel[T]) Chart() *chart.Chart {
	return p.ChartAs(p.chartType)
}

// ChartAs renders the current dataset as t without changing the selection.
func (p *ChartPanel[T]) ChartAs(t domain.ChartType) *chart.Chart {
	return chart.Render(t, p.data, p.opts.DataKey, p.opts.Config)
}

// Tooltip returns the tooltip of the point under the cursor.
func (p *ChartPanel[T]) Tooltip() (chart.Tooltip, bool) {
	c := p.Chart()
	if c.Empty() || p.cursor >= len(c.Points) {
		return chart.Tooltip{}, false
	}
	return c.Points[p.cursor].Tooltip, true
}

// Props returns the container props for this panel. The change handler is the
// panel's own SetChartType.
func (p *ChartPanel[T]) Props(width, height int, focused bool) ContainerProps {
	return ContainerProps{
		Title:       p.opts.Title,
		Description: p.opts.Description,
		ChartType:   p.chartType,
		OnChange:    p.SetChartType,
		Width:       width,
		Height:      height,
		Focused:     focused,
	}
}

// View renders the panel in its container. The cursor and its tooltip are only
// shown while the panel has focus.
func (p *ChartPanel[T]) View(width, height int, focused bool) string {
	plotHeight := height - 1 // Tooltip line
	if plotHeight < 1 {
		plotHeight = 1
	}
	props := p.Props(width, height, focused)

	cursor := -1
	if focused {
		cursor = p.cursor
	}
	body := DrawChart(p.Chart(), width-4, plotHeight, cursor)

	if focused {
		if tip, ok := p.Tooltip(); ok {
			body += "\n" + TooltipStyle.Render(tip.Label+": "+tip.Value)
		}
	}
	return ChartContainer(props, body)
}
