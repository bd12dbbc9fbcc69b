// Package chart maps a chart type, a dataset and a styling config to a
// declarative chart tree. Rendering is pure: the same inputs always produce
// the same tree, and drawing the tree is left to the terminal view and the
// exporters.
package chart

import (
	"math"
	"strconv"

	"github.com/h0rv/bpmdash/internal/domain"
)

// Datum is the contract every dataset item satisfies.
type Datum interface {
	Base() domain.ChartDataItem
	Field(key string) (any, bool)
}

// Tooltip is the precomputed hover text for one point.
type Tooltip struct {
	Label string
	Value string
}

// Point is one plotted item: a bar, a line vertex or a pie slice.
type Point struct {
	ID       string
	Category string  // Category axis label (pie: slice name)
	Value    float64 // Plotted value, 0 when Missing
	Missing  bool    // The dataKey field was absent or not numeric
	Color    string  // Resolved fill for this point
	Percent  float64 // Pie only: share of the total in [0, 1]
	Label    string  // Pie only: slice label
	Tooltip  Tooltip
}

// Chart is the rendered tree for one chart.
type Chart struct {
	Kind     domain.ChartType
	DataKey  string
	LabelKey string

	Margin       Margin
	XAxis        AxisConfig
	YAxis        AxisConfig
	Grid         GridConfig
	TooltipStyle TooltipStyle

	Points []Point

	// Bar: Cells is true when every bar carries its own color; otherwise all
	// bars share Fill. Line/area: Fill is the series stroke and fill color.
	Cells       bool
	Fill        string
	FillOpacity float64

	// Corner radii for bars: top-left, top-right, bottom-right, bottom-left.
	Radius [4]int

	// Pie outer radius in pixels.
	OuterRadius int

	MaxValue float64
	Total    float64
}

// Categories returns the category labels in input order.
func (c *Chart) Categories() []string {
	out := make([]string, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Category
	}
	return out
}

// Values returns the plotted values in input order.
func (c *Chart) Values() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Value
	}
	return out
}

// Empty reports whether the chart has no points.
func (c *Chart) Empty() bool {
	return c == nil || len(c.Points) == 0
}

// Render builds the chart tree for kind. It returns nil for a chart type
// outside the known set. Empty data yields a valid chart with no points.
func Render[T Datum](kind domain.ChartType, data []T, dataKey string, cfg Config[T]) *Chart {
	var c *Chart
	switch kind {
	case domain.ChartBar:
		c = newChart(kind, data, dataKey, cfg)
		renderBar(c, data, cfg)
	case domain.ChartLine:
		c = newChart(kind, data, dataKey, cfg)
		renderSeries(c, data, cfg, 0)
	case domain.ChartArea:
		c = newChart(kind, data, dataKey, cfg)
		renderSeries(c, data, cfg, areaFillOpacity)
	case domain.ChartPie:
		c = newChart(kind, data, dataKey, cfg)
		renderPie(c, data, cfg)
	default:
		return nil
	}
	return c
}

func newChart[T Datum](kind domain.ChartType, data []T, dataKey string, cfg Config[T]) *Chart {
	c := &Chart{
		Kind:         kind,
		DataKey:      dataKey,
		LabelKey:     cfg.labelKey(),
		Margin:       cfg.margin(),
		XAxis:        mergeAxis(DefaultAxis, cfg.XAxis),
		YAxis:        mergeAxis(DefaultAxis, cfg.YAxis),
		Grid:         mergeGrid(DefaultGrid, cfg.Grid),
		TooltipStyle: cfg.tooltipStyle(),
		Points:       make([]Point, len(data)),
	}

	for i, item := range data {
		value, ok := numericField(item, dataKey)
		category := stringField(item, c.LabelKey)
		c.Points[i] = Point{
			ID:       item.Base().ID,
			Category: category,
			Value:    value,
			Missing:  !ok,
			Tooltip:  tooltipFor(cfg, item, category, value),
		}
		c.Total += value
		if value > c.MaxValue {
			c.MaxValue = value
		}
	}
	return c
}

func renderBar[T Datum](c *Chart, data []T, cfg Config[T]) {
	c.Radius = [4]int{barCornerRadius, barCornerRadius, 0, 0}
	c.FillOpacity = 1
	c.Cells = cfg.perCellColoring()
	c.Fill = literalColor(cfg)

	for i, item := range data {
		if c.Cells {
			c.Points[i].Color = ResolveColor(cfg, item, i)
		} else {
			c.Points[i].Color = c.Fill
		}
	}
}

func renderSeries[T Datum](c *Chart, data []T, cfg Config[T], opacity float64) {
	// A single series has one color, taken from the first item.
	if len(data) > 0 {
		c.Fill = ResolveColor(cfg, data[0], 0)
	} else {
		c.Fill = fallbackColor(cfg)
	}
	c.FillOpacity = opacity

	for i := range c.Points {
		c.Points[i].Color = c.Fill
	}
}

func renderPie[T Datum](c *Chart, data []T, cfg Config[T]) {
	c.FillOpacity = 1
	c.OuterRadius = pieOuterRadius
	if len(data) > pieDenseAbove {
		c.OuterRadius = pieDenseOuterRadius
	}

	for i, item := range data {
		p := &c.Points[i]
		if c.Total > 0 {
			p.Percent = p.Value / c.Total
		}
		p.Label = PieLabel(p.Category, p.Percent)
		p.Color = ResolveColor(cfg, item, i)
	}
}

func tooltipFor[T Datum](cfg Config[T], item T, category string, value float64) Tooltip {
	t := Tooltip{
		Label: category,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
	if cfg.Tooltip.Formatter != nil {
		t.Value = cfg.Tooltip.Formatter(value, category, item)
	}
	if cfg.Tooltip.LabelFormatter != nil {
		t.Label = cfg.Tooltip.LabelFormatter(category, &item)
	}
	return t
}

// numericField coerces the field named key to a finite float64.
func numericField(item Datum, key string) (float64, bool) {
	raw, ok := item.Field(key)
	if !ok {
		return 0, false
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint:
		v = float64(n)
	case uint32:
		v = float64(n)
	case uint64:
		v = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func stringField(item Datum, key string) string {
	raw, ok := item.Field(key)
	if !ok || raw == nil {
		return ""
	}
	switch s := raw.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	}
	if v, ok := numericField(item, key); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
