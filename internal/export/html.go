package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	echartsopts "github.com/go-echarts/go-echarts/v2/opts"
	"github.com/h0rv/bpmdash/internal/chart"
	"github.com/h0rv/bpmdash/internal/domain"
)

func writeHTML(w io.Writer, c *chart.Chart, opts Options) error {
	var err error
	switch c.Kind {
	case domain.ChartBar:
		err = barHTML(c, opts).Render(w)
	case domain.ChartLine, domain.ChartArea:
		err = lineHTML(c, opts).Render(w)
	case domain.ChartPie:
		err = pieHTML(c, opts).Render(w)
	default:
		return ErrNilChart
	}
	if err != nil {
		return fmt.Errorf("failed to render html %s chart: %w", c.Kind, err)
	}
	return nil
}

func initOpts(opts Options) echartsopts.Initialization {
	return echartsopts.Initialization{
		PageTitle: opts.Title,
		Width:     fmt.Sprintf("%dpx", opts.Width),
		Height:    fmt.Sprintf("%dpx", opts.Height),
	}
}

func titleOpts(opts Options) echartsopts.Title {
	return echartsopts.Title{
		Title:    opts.Title,
		Subtitle: opts.Subtitle,
	}
}

func xAxisOpts(c *chart.Chart) echartsopts.XAxis {
	x := echartsopts.XAxis{
		Name:     c.XAxis.Label,
		Type:     "category",
		AxisLine: &echartsopts.AxisLine{LineStyle: &echartsopts.LineStyle{Color: c.XAxis.LineColor}},
	}
	if c.XAxis.Tick != nil {
		x.AxisLabel = &echartsopts.AxisLabel{Color: c.XAxis.Tick.Color}
	}
	if c.XAxis.Hidden {
		x.Show = echartsopts.Bool(false)
	}
	return x
}

func yAxisOpts(c *chart.Chart, opts Options) echartsopts.YAxis {
	y := echartsopts.YAxis{
		Name:     opts.ValueLabel,
		AxisLine: &echartsopts.AxisLine{LineStyle: &echartsopts.LineStyle{Color: c.YAxis.LineColor}},
		SplitLine: &echartsopts.SplitLine{
			Show:      echartsopts.Bool(true),
			LineStyle: &echartsopts.LineStyle{Color: c.Grid.Stroke, Type: "dashed"},
		},
	}
	if c.YAxis.Label != "" {
		y.Name = c.YAxis.Label
	}
	if c.YAxis.Tick != nil {
		y.AxisLabel = &echartsopts.AxisLabel{Color: c.YAxis.Tick.Color}
	}
	if c.YAxis.Hidden {
		y.Show = echartsopts.Bool(false)
	}
	return y
}

func barHTML(c *chart.Chart, opts Options) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(opts)),
		charts.WithTitleOpts(titleOpts(opts)),
		charts.WithTooltipOpts(echartsopts.Tooltip{
			Show:        echartsopts.Bool(true),
			Trigger:     "axis",
			AxisPointer: &echartsopts.AxisPointer{Type: "shadow"},
		}),
		charts.WithLegendOpts(echartsopts.Legend{Show: echartsopts.Bool(false)}),
		charts.WithXAxisOpts(xAxisOpts(c)),
		charts.WithYAxisOpts(yAxisOpts(c, opts)),
	)

	data := make([]echartsopts.BarData, len(c.Points))
	for i, p := range c.Points {
		data[i] = echartsopts.BarData{
			Name:      p.Category,
			Value:     p.Value,
			ItemStyle: &echartsopts.ItemStyle{Color: p.Color},
		}
	}
	bar.SetXAxis(c.Categories()).AddSeries(opts.ValueLabel, data)
	return bar
}

func lineHTML(c *chart.Chart, opts Options) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(opts)),
		charts.WithTitleOpts(titleOpts(opts)),
		charts.WithTooltipOpts(echartsopts.Tooltip{Show: echartsopts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(echartsopts.Legend{Show: echartsopts.Bool(false)}),
		charts.WithXAxisOpts(xAxisOpts(c)),
		charts.WithYAxisOpts(yAxisOpts(c, opts)),
	)

	data := make([]echartsopts.LineData, len(c.Points))
	for i, p := range c.Points {
		data[i] = echartsopts.LineData{Name: p.Category, Value: p.Value}
	}

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineStyleOpts(echartsopts.LineStyle{Color: c.Fill, Width: lineStrokeWidth}),
		charts.WithItemStyleOpts(echartsopts.ItemStyle{Color: c.Fill}),
	}
	if c.FillOpacity > 0 {
		seriesOpts = append(seriesOpts,
			charts.WithAreaStyleOpts(echartsopts.AreaStyle{Color: rgba(c.Fill, c.FillOpacity)}))
	}
	line.SetXAxis(c.Categories()).AddSeries(opts.ValueLabel, data, seriesOpts...)
	return line
}

func pieHTML(c *chart.Chart, opts Options) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(opts)),
		charts.WithTitleOpts(titleOpts(opts)),
		charts.WithTooltipOpts(echartsopts.Tooltip{Show: echartsopts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(echartsopts.Legend{Show: echartsopts.Bool(false)}),
	)

	data := make([]echartsopts.PieData, len(c.Points))
	for i, p := range c.Points {
		data[i] = echartsopts.PieData{
			Name:      p.Label,
			Value:     p.Value,
			ItemStyle: &echartsopts.ItemStyle{Color: p.Color},
		}
	}

	pie.AddSeries(opts.ValueLabel, data).SetSeriesOptions(
		charts.WithLabelOpts(echartsopts.Label{Show: echartsopts.Bool(true), Formatter: "{b}"}),
		charts.WithPieChartOpts(echartsopts.PieChart{
			Radius: fmt.Sprintf("%d%%", pieRadiusPercent(c.OuterRadius, opts.Height)),
		}),
	)
	return pie
}

// pieRadiusPercent converts an outer radius in pixels to a percentage of the
// smaller container side, the unit echarts sizes pies in.
func pieRadiusPercent(radius, height int) int {
	if height <= 0 {
		return 0
	}
	pct := radius * 200 / height
	if pct > 90 {
		pct = 90
	}
	return pct
}
