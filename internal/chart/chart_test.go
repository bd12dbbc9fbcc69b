package chart

import (
	"fmt"
	"testing"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item = domain.ChartDataItem

func createTestItems() []item {
	return []item{
		{ID: "1", Name: "P001", Value: 15},
		{ID: "2", Name: "P002", Value: 9},
	}
}

func createTestDefects() []domain.DefectChartData {
	return []domain.DefectChartData{
		{ChartDataItem: item{ID: "1", Name: "GC-01", Value: 42}, DefectName: "Foreign Particle in Gel Coat", Severity: domain.SeverityHigh},
		{ChartDataItem: item{ID: "2", Name: "GC-02", Value: 20}, DefectName: "Air Void", Severity: domain.SeverityMedium},
		{ChartDataItem: item{ID: "3", Name: "GC-03", Value: 3}, DefectName: "Scratch", Severity: domain.SeverityLow},
	}
}

func TestResolveColor_Precedence(t *testing.T) {
	it := item{ID: "1", Name: "x", Value: 1}
	cfg := Config[item]{
		GetColor:  func(item) string { return "get" },
		Colors:    []string{"c0", "c1", "c2"},
		ColorFunc: func(item) string { return "fn" },
		Color:     "literal",
	}

	assert.Equal(t, "get", ResolveColor(cfg, it, 4))

	cfg.GetColor = nil
	assert.Equal(t, "c1", ResolveColor(cfg, it, 4), "list is indexed modulo its length")

	cfg.Colors = nil
	assert.Equal(t, "fn", ResolveColor(cfg, it, 4))

	cfg.ColorFunc = nil
	assert.Equal(t, "literal", ResolveColor(cfg, it, 4))

	cfg.Color = ""
	assert.Equal(t, DefaultColor, ResolveColor(cfg, it, 4))
}

func TestPieLabel(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		expected string
	}{
		{"Foreign Particle in Gel Coat", 0.14, "Foreign Particl...: 14%"},
		{"Exactly15Chars!", 0.5, "Exactly15Chars!: 50%"},
		{"Short", 0.125, "Short: 13%"},
		{"Zero", 0, "Zero: 0%"},
		{"Überlänge Prüfung Nummer", 1, "Überlänge Prüfu...: 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PieLabel(tt.name, tt.percent))
		})
	}
}

func TestRender_UnknownChartType(t *testing.T) {
	assert.NotPanics(t, func() {
		c := Render(domain.ChartType("radar"), createTestItems(), "value", Config[item]{})
		assert.Nil(t, c)
		assert.True(t, c.Empty())
	})
}

func TestRender_EmptyDataset(t *testing.T) {
	for _, kind := range domain.ChartTypes {
		t.Run(string(kind), func(t *testing.T) {
			c := Render(kind, []item{}, "value", Config[item]{GetColor: func(item) string { return "#000" }})
			require.NotNil(t, c)
			assert.Equal(t, kind, c.Kind)
			assert.Empty(t, c.Points)
			assert.Zero(t, c.Total)
			assert.Empty(t, c.Categories())
			assert.True(t, c.Empty())
		})
	}
}

func TestRender_BarUniformFill(t *testing.T) {
	c := Render(domain.ChartBar, createTestItems(), "value", Config[item]{Color: "#0D5FDC"})
	require.NotNil(t, c)

	assert.False(t, c.Cells)
	assert.Equal(t, "#0D5FDC", c.Fill)
	assert.Equal(t, []string{"P001", "P002"}, c.Categories())
	assert.Equal(t, []float64{15, 9}, c.Values())
	assert.Equal(t, 15.0, c.MaxValue)
	assert.Equal(t, [4]int{4, 4, 0, 0}, c.Radius)
	for _, p := range c.Points {
		assert.Equal(t, "#0D5FDC", p.Color)
	}
}

func TestRender_BarCells(t *testing.T) {
	t.Run("color list", func(t *testing.T) {
		c := Render(domain.ChartBar, createTestItems(), "value", Config[item]{Colors: []string{"#a", "#b"}})
		require.NotNil(t, c)
		assert.True(t, c.Cells)
		assert.Equal(t, "#a", c.Points[0].Color)
		assert.Equal(t, "#b", c.Points[1].Color)
	})

	t.Run("per item function", func(t *testing.T) {
		cfg := Config[domain.DefectChartData]{
			GetColor: func(d domain.DefectChartData) string { return string(d.Severity) },
		}
		c := Render(domain.ChartBar, createTestDefects(), "value", cfg)
		require.NotNil(t, c)
		assert.True(t, c.Cells)
		assert.Equal(t, "high", c.Points[0].Color)
		assert.Equal(t, "medium", c.Points[1].Color)
		assert.Equal(t, "low", c.Points[2].Color)
	})
}

func TestRender_LineAndArea(t *testing.T) {
	cfg := Config[domain.DefectChartData]{
		GetColor: func(d domain.DefectChartData) string { return "sev-" + string(d.Severity) },
	}

	line := Render(domain.ChartLine, createTestDefects(), "value", cfg)
	require.NotNil(t, line)
	assert.Equal(t, "sev-high", line.Fill, "series color comes from the first item")
	assert.Zero(t, line.FillOpacity)
	for _, p := range line.Points {
		assert.Equal(t, "sev-high", p.Color)
	}

	area := Render(domain.ChartArea, createTestDefects(), "value", cfg)
	require.NotNil(t, area)
	assert.Equal(t, "sev-high", area.Fill)
	assert.Equal(t, 0.6, area.FillOpacity)
}

func TestRender_Pie(t *testing.T) {
	data := []item{
		{ID: "1", Name: "Foreign Particle in Gel Coat", Value: 14},
		{ID: "2", Name: "Other", Value: 86},
	}
	c := Render(domain.ChartPie, data, "value", Config[item]{Colors: []string{"#1", "#2"}})
	require.NotNil(t, c)

	assert.Equal(t, 100.0, c.Total)
	assert.Equal(t, 80, c.OuterRadius)
	assert.InDelta(t, 0.14, c.Points[0].Percent, 1e-9)
	assert.Equal(t, "Foreign Particl...: 14%", c.Points[0].Label)
	assert.Equal(t, "Other: 86%", c.Points[1].Label)
	assert.Equal(t, "#1", c.Points[0].Color)
	assert.Equal(t, "#2", c.Points[1].Color)

	t.Run("dense dataset grows the radius", func(t *testing.T) {
		dense := make([]item, 11)
		for i := range dense {
			dense[i] = item{ID: fmt.Sprint(i), Name: fmt.Sprint("n", i), Value: 1}
		}
		c := Render(domain.ChartPie, dense, "value", Config[item]{})
		require.NotNil(t, c)
		assert.Equal(t, 100, c.OuterRadius)

		c = Render(domain.ChartPie, dense[:10], "value", Config[item]{})
		require.NotNil(t, c)
		assert.Equal(t, 80, c.OuterRadius)
	})

	t.Run("all zero values", func(t *testing.T) {
		c := Render(domain.ChartPie, []item{{ID: "1", Name: "a"}}, "value", Config[item]{})
		require.NotNil(t, c)
		assert.Equal(t, "a: 0%", c.Points[0].Label)
	})
}

func TestRender_MissingDataKey(t *testing.T) {
	c := Render(domain.ChartBar, createTestItems(), "cost", Config[item]{})
	require.NotNil(t, c)

	for _, p := range c.Points {
		assert.True(t, p.Missing)
		assert.Zero(t, p.Value)
	}
	assert.Equal(t, []string{"P001", "P002"}, c.Categories())
}

func TestRender_NonNumericDataKey(t *testing.T) {
	c := Render(domain.ChartBar, createTestDefects(), domain.FieldDefectName, Config[domain.DefectChartData]{})
	require.NotNil(t, c)
	assert.True(t, c.Points[0].Missing)
	assert.Zero(t, c.Total)
}

func TestRender_LabelKey(t *testing.T) {
	c := Render(domain.ChartBar, createTestDefects(), "value", Config[domain.DefectChartData]{LabelKey: domain.FieldDefectName})
	require.NotNil(t, c)
	assert.Equal(t, "Foreign Particle in Gel Coat", c.Points[0].Category)
}

func TestRender_ShallowMerge(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := Render(domain.ChartBar, createTestItems(), "value", Config[item]{})
		require.NotNil(t, c)
		assert.Equal(t, DefaultMargin, c.Margin)
		assert.Equal(t, DefaultGrid, c.Grid)
		assert.Equal(t, DefaultTooltipStyle, c.TooltipStyle)
		require.NotNil(t, c.XAxis.Tick)
		assert.Equal(t, 12, c.XAxis.Tick.FontSize)
		assert.Equal(t, "#e0e0e0", c.YAxis.LineColor)
	})

	t.Run("overrides replace top-level fields only", func(t *testing.T) {
		cfg := Config[item]{
			Margin: &Margin{Top: 20},
			XAxis:  AxisConfig{Tick: &TextStyle{FontSize: 10}},
			YAxis:  AxisConfig{LineColor: "#000"},
			Grid:   GridConfig{Stroke: "#ccc"},
			Tooltip: TooltipConfig[item]{
				Style: &TooltipStyle{Background: "#222"},
			},
		}
		c := Render(domain.ChartBar, createTestItems(), "value", cfg)
		require.NotNil(t, c)

		assert.Equal(t, Margin{Top: 20}, c.Margin)
		// Nested tick style is replaced, not merged: no color carried over.
		assert.Equal(t, TextStyle{FontSize: 10}, *c.XAxis.Tick)
		assert.Equal(t, "#e0e0e0", c.XAxis.LineColor)
		assert.Equal(t, "#000", c.YAxis.LineColor)
		assert.Equal(t, *DefaultAxis.Tick, *c.YAxis.Tick)
		assert.Equal(t, GridConfig{Stroke: "#ccc", DashArray: "3 3"}, c.Grid)
		assert.Equal(t, TooltipStyle{Background: "#222"}, c.TooltipStyle)
	})

	t.Run("defaults are not mutated", func(t *testing.T) {
		c := Render(domain.ChartBar, createTestItems(), "value", Config[item]{})
		require.NotNil(t, c)
		c.XAxis.Tick.FontSize = 99
		assert.Equal(t, 12, DefaultAxis.Tick.FontSize)
	})
}

func TestRender_Tooltips(t *testing.T) {
	t.Run("raw values without formatters", func(t *testing.T) {
		c := Render(domain.ChartBar, createTestItems(), "value", Config[item]{})
		require.NotNil(t, c)
		assert.Equal(t, Tooltip{Label: "P001", Value: "15"}, c.Points[0].Tooltip)
	})

	t.Run("formatters receive the item", func(t *testing.T) {
		cfg := Config[domain.DefectChartData]{
			Tooltip: TooltipConfig[domain.DefectChartData]{
				Formatter: func(v float64, name string, d domain.DefectChartData) string {
					return fmt.Sprintf("%.0f Occurrences", v)
				},
				LabelFormatter: func(label string, d *domain.DefectChartData) string {
					if d == nil {
						return label
					}
					return d.DefectName
				},
			},
		}
		c := Render(domain.ChartLine, createTestDefects(), "value", cfg)
		require.NotNil(t, c)
		assert.Equal(t, Tooltip{Label: "Foreign Particle in Gel Coat", Value: "42 Occurrences"}, c.Points[0].Tooltip)
	})
}

func TestRender_Idempotent(t *testing.T) {
	cfg := Config[item]{Colors: []string{"#a", "#b", "#c"}}
	for _, kind := range domain.ChartTypes {
		first := Render(kind, createTestItems(), "value", cfg)
		second := Render(kind, createTestItems(), "value", cfg)
		assert.Equal(t, first, second, string(kind))
	}
}
