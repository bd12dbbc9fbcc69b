package chart

// DefaultColor is the fill used when no coloring option is supplied.
const DefaultColor = "#8884d8"

// Layout defaults.
const (
	barCornerRadius     = 4
	areaFillOpacity     = 0.6
	pieOuterRadius      = 80
	pieDenseOuterRadius = 100
	pieDenseAbove       = 10
	pieLabelMaxRunes    = 15
	defaultLabelKey     = "name"
)

// Margin is the space between the plot area and the chart bounds, in pixels.
type Margin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// TextStyle styles axis tick labels.
type TextStyle struct {
	FontSize int
	Color    string
}

// AxisConfig configures one axis. Zero fields keep the default; a non-nil Tick
// replaces the default tick style as a whole.
type AxisConfig struct {
	Label     string     // Axis title
	Tick      *TextStyle // Tick label style
	LineColor string     // Axis line color
	Hidden    bool
}

// GridConfig configures the background grid.
type GridConfig struct {
	Stroke    string
	DashArray string
}

// TooltipStyle is the tooltip box appearance.
type TooltipStyle struct {
	Background   string
	BorderColor  string
	BorderRadius int
	Shadow       string
}

// TooltipConfig controls tooltip text. Formatters receive the hovered item.
// LabelFormatter gets a nil item when no payload is available.
type TooltipConfig[T Datum] struct {
	Formatter      func(value float64, name string, item T) string
	LabelFormatter func(label string, item *T) string
	Style          *TooltipStyle
}

// Config is the per-render styling for a chart. Nothing in it is persisted.
//
// Color resolution order for an item: GetColor, then Colors (cycled by index),
// then ColorFunc, then Color, then DefaultColor.
type Config[T Datum] struct {
	Color     string
	ColorFunc func(item T) string
	Colors    []string
	GetColor  func(item T) string

	// LabelKey names the field used for category labels and pie slice names.
	// Defaults to "name".
	LabelKey string

	Margin  *Margin
	XAxis   AxisConfig
	YAxis   AxisConfig
	Grid    GridConfig
	Tooltip TooltipConfig[T]
}

// DefaultMargin is applied when Config.Margin is nil.
var DefaultMargin = Margin{Top: 5, Right: 30, Bottom: 5, Left: 20}

// DefaultAxis is the base for both axes.
var DefaultAxis = AxisConfig{
	Tick:      &TextStyle{FontSize: 12, Color: "#666666"},
	LineColor: "#e0e0e0",
}

// DefaultGrid is the base grid style.
var DefaultGrid = GridConfig{
	Stroke:    "#f0f0f0",
	DashArray: "3 3",
}

// DefaultTooltipStyle is the base tooltip box.
var DefaultTooltipStyle = TooltipStyle{
	Background:   "#ffffff",
	BorderColor:  "#e0e0e0",
	BorderRadius: 8,
	Shadow:       "0 4px 12px rgba(0, 0, 0, 0.1)",
}

func mergeAxis(base, override AxisConfig) AxisConfig {
	out := base
	if override.Label != "" {
		out.Label = override.Label
	}
	if override.Tick != nil {
		tick := *override.Tick
		out.Tick = &tick
	} else if base.Tick != nil {
		tick := *base.Tick
		out.Tick = &tick
	}
	if override.LineColor != "" {
		out.LineColor = override.LineColor
	}
	if override.Hidden {
		out.Hidden = true
	}
	return out
}

func mergeGrid(base, override GridConfig) GridConfig {
	out := base
	if override.Stroke != "" {
		out.Stroke = override.Stroke
	}
	if override.DashArray != "" {
		out.DashArray = override.DashArray
	}
	return out
}

func (c Config[T]) labelKey() string {
	if c.LabelKey == "" {
		return defaultLabelKey
	}
	return c.LabelKey
}

func (c Config[T]) margin() Margin {
	if c.Margin == nil {
		return DefaultMargin
	}
	return *c.Margin
}

func (c Config[T]) tooltipStyle() TooltipStyle {
	if c.Tooltip.Style == nil {
		return DefaultTooltipStyle
	}
	return *c.Tooltip.Style
}

// perCellColoring reports whether bars need individually colored cells.
func (c Config[T]) perCellColoring() bool {
	return c.GetColor != nil || len(c.Colors) > 0 || c.ColorFunc != nil
}
