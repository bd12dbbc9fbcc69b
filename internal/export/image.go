package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/h0rv/bpmdash/internal/chart"
	"github.com/h0rv/bpmdash/internal/domain"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	titlePadding    = 40
	lineStrokeWidth = 2
)

func writeImage(w io.Writer, format Format, c *chart.Chart, opts Options) error {
	var rp gochart.RendererProvider = gochart.SVG
	if format == FormatPNG {
		rp = gochart.PNG
	}

	var err error
	switch c.Kind {
	case domain.ChartBar:
		err = renderBarImage(w, rp, c, opts)
	case domain.ChartLine, domain.ChartArea:
		err = renderSeriesImage(w, rp, c, opts)
	case domain.ChartPie:
		err = renderPieImage(w, rp, c, opts)
	default:
		return ErrNilChart
	}
	if err != nil {
		return fmt.Errorf("failed to render %s %s chart: %w", format, c.Kind, err)
	}
	return nil
}

func background(c *chart.Chart) gochart.Style {
	return gochart.Style{
		Padding: gochart.Box{
			Top:    c.Margin.Top + titlePadding,
			Right:  c.Margin.Right,
			Bottom: c.Margin.Bottom,
			Left:   c.Margin.Left,
		},
	}
}

func axisStyle(a chart.AxisConfig) gochart.Style {
	s := gochart.Style{
		Hidden:      a.Hidden,
		StrokeColor: drawingColor(a.LineColor),
	}
	if a.Tick != nil {
		s.FontSize = float64(a.Tick.FontSize)
		s.FontColor = drawingColor(a.Tick.Color)
	}
	return s
}

func gridStyle(g chart.GridConfig) gochart.Style {
	return gochart.Style{
		StrokeColor:     drawingColor(g.Stroke),
		StrokeWidth:     1,
		StrokeDashArray: dashArray(g.DashArray),
	}
}

// dashArray parses an SVG-style dash pattern such as "3 3" or "4,2". Empty or
// malformed patterns draw a solid line.
func dashArray(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 0 {
		return nil
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			return nil
		}
		out[i] = v
	}
	return out
}

func renderBarImage(w io.Writer, rp gochart.RendererProvider, c *chart.Chart, opts Options) error {
	if c.Empty() {
		return ErrEmptyChart
	}

	bars := make([]gochart.Value, len(c.Points))
	for i, p := range c.Points {
		fill := drawingColor(p.Color)
		bars[i] = gochart.Value{
			Label: p.Category,
			Value: p.Value,
			Style: gochart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		}
	}

	bc := gochart.BarChart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background(c),
		XAxis:      axisStyle(c.XAxis),
		YAxis: gochart.YAxis{
			Name:           opts.ValueLabel,
			Style:          axisStyle(c.YAxis),
			GridMajorStyle: gridStyle(c.Grid),
		},
		Bars: bars,
	}
	return bc.Render(rp, w)
}

func renderSeriesImage(w io.Writer, rp gochart.RendererProvider, c *chart.Chart, opts Options) error {
	if len(c.Points) < 2 {
		return ErrInsufficientData
	}

	xs := make([]float64, len(c.Points))
	ticks := make([]gochart.Tick, len(c.Points))
	for i, p := range c.Points {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: p.Category}
	}

	stroke := drawingColor(c.Fill)
	style := gochart.Style{
		StrokeColor: stroke,
		StrokeWidth: lineStrokeWidth,
	}
	if c.FillOpacity > 0 {
		style.FillColor = stroke.WithAlpha(uint8(c.FillOpacity * 255))
	}

	graph := gochart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background(c),
		XAxis: gochart.XAxis{
			Style: axisStyle(c.XAxis),
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name:           opts.ValueLabel,
			Style:          axisStyle(c.YAxis),
			GridMajorStyle: gridStyle(c.Grid),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    opts.ValueLabel,
				XValues: xs,
				YValues: c.Values(),
				Style:   style,
			},
		},
	}
	return graph.Render(rp, w)
}

func renderPieImage(w io.Writer, rp gochart.RendererProvider, c *chart.Chart, opts Options) error {
	values := make([]gochart.Value, 0, len(c.Points))
	for _, p := range c.Points {
		// Zero slices have no area and go-chart rejects an all-zero pie.
		if p.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: gochart.Style{
				FillColor:   drawingColor(p.Color),
				StrokeColor: drawing.ColorWhite,
			},
		})
	}
	if len(values) == 0 {
		return ErrEmptyChart
	}

	pie := gochart.PieChart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background(c),
		Values:     values,
	}
	return pie.Render(rp, w)
}
