package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/bpmdash/internal/chart"
	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/muesli/reflow/truncate"
)

// Drawing glyphs.
const (
	glyphBar    = "█"
	glyphMarker = "●"
	glyphLine   = "•"
	glyphFill   = "░"
	glyphAxis   = "─"
	glyphLegend = "■"
)

const (
	maxBarLabelWidth = 16
	minPlotWidth     = 8
)

// NoDataText is drawn in place of a chart without points.
const NoDataText = "No data"

// DrawChart draws c into a width x height block of terminal cells. The point
// at cursor is highlighted; pass -1 for no cursor. A nil chart draws nothing.
func DrawChart(c *chart.Chart, width, height, cursor int) string {
	if c == nil || width <= 0 || height <= 0 {
		return ""
	}
	if c.Empty() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dimStyle.Render(NoDataText))
	}

	switch c.Kind {
	case domain.ChartBar:
		return drawBars(c, width, height, cursor)
	case domain.ChartLine, domain.ChartArea:
		return drawSeries(c, width, height, cursor)
	case domain.ChartPie:
		return drawPie(c, width, height, cursor)
	}
	return ""
}

func colored(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// scale maps v onto [0, size] relative to top.
func scale(v, top float64, size int) int {
	if top <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / top * float64(size)))
	if n > size {
		n = size
	}
	return n
}

// drawBars draws one horizontal bar per point in input order, category first.
func drawBars(c *chart.Chart, width, height, cursor int) string {
	labelWidth := 0
	valueWidth := 0
	for _, p := range c.Points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Category))
		valueWidth = max(valueWidth, len(formatValue(p.Value)))
	}
	labelWidth = min(labelWidth, maxBarLabelWidth)

	barWidth := width - labelWidth - valueWidth - 3
	if barWidth < 1 {
		barWidth = 1
	}

	lines := make([]string, 0, height)
	start := windowStart(len(c.Points), height, cursor)
	for i, p := range visibleWindow(c.Points, height, cursor) {
		idx := start + i
		label := fitLabel(p.Category, labelWidth)
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		if idx == cursor {
			label = SelectedItemStyle.Render(label)
		} else {
			label = axisStyle.Render(label)
		}

		bar := colored(p.Color).Render(strings.Repeat(glyphBar, scale(p.Value, c.MaxValue, barWidth)))
		lines = append(lines, fmt.Sprintf("%s │%s %s", label, bar, formatValue(p.Value)))
	}
	return strings.Join(lines, "\n")
}

// windowStart returns the first index of a height-sized window over n rows
// that keeps cursor visible.
func windowStart(n, height, cursor int) int {
	if n <= height || cursor < height {
		return 0
	}
	start := cursor - height + 1
	if start > n-height {
		start = n - height
	}
	return start
}

func visibleWindow(points []chart.Point, height, cursor int) []chart.Point {
	start := windowStart(len(points), height, cursor)
	end := min(start+height, len(points))
	return points[start:end]
}

// drawSeries plots a single line, optionally filled below, with the category
// labels under the x axis.
func drawSeries(c *chart.Chart, width, height, cursor int) string {
	plotHeight := height - 2 // Axis and labels
	if plotHeight < 1 {
		plotHeight = 1
	}
	plotWidth := max(width, minPlotWidth)
	n := len(c.Points)

	grid := make([][]string, plotHeight)
	for r := range grid {
		grid[r] = make([]string, plotWidth)
		for x := range grid[r] {
			grid[r][x] = " "
		}
	}

	style := colored(c.Fill)
	columns := pointColumns(n, plotWidth)
	rowOf := func(v float64) int {
		return plotHeight - 1 - scale(v, c.MaxValue, plotHeight-1)
	}

	// Interpolate between neighbouring points so the line is continuous.
	for x := 0; x < plotWidth; x++ {
		v, ok := interpolate(c.Points, columns, x)
		if !ok {
			continue
		}
		row := rowOf(v)
		grid[row][x] = style.Render(glyphLine)
		if c.FillOpacity > 0 {
			for r := row + 1; r < plotHeight; r++ {
				grid[r][x] = style.Render(glyphFill)
			}
		}
	}
	for i, p := range c.Points {
		marker := style
		if i == cursor {
			marker = SelectedItemStyle
		}
		grid[rowOf(p.Value)][columns[i]] = marker.Render(glyphMarker)
	}

	lines := make([]string, 0, height)
	for _, row := range grid {
		lines = append(lines, strings.Join(row, ""))
	}
	lines = append(lines, axisStyle.Render(strings.Repeat(glyphAxis, plotWidth)))
	if height > 1 {
		lines = append(lines, seriesLabels(c.Points, columns, plotWidth, cursor))
	}
	return strings.Join(lines, "\n")
}

// pointColumns spreads n points evenly across width columns.
func pointColumns(n, width int) []int {
	cols := make([]int, n)
	if n == 1 {
		cols[0] = width / 2
		return cols
	}
	for i := range cols {
		cols[i] = i * (width - 1) / (n - 1)
	}
	return cols
}

func interpolate(points []chart.Point, columns []int, x int) (float64, bool) {
	if len(points) == 1 {
		return points[0].Value, x == columns[0]
	}
	for i := 1; i < len(points); i++ {
		x0, x1 := columns[i-1], columns[i]
		if x < x0 || x > x1 {
			continue
		}
		if x1 == x0 {
			return points[i].Value, true
		}
		t := float64(x-x0) / float64(x1-x0)
		return points[i-1].Value + t*(points[i].Value-points[i-1].Value), true
	}
	return 0, false
}

// seriesLabels writes each category under its column, pushing a label right
// when it would overlap the previous one.
func seriesLabels(points []chart.Point, columns []int, width, cursor int) string {
	var b strings.Builder
	pos := 0
	for i, p := range points {
		start := columns[i] - lipgloss.Width(p.Category)/2
		if start < pos {
			start = pos
		}
		room := width - start
		if room <= 0 {
			break
		}
		label := truncate.String(p.Category, uint(room))
		if start > pos {
			b.WriteString(strings.Repeat(" ", start-pos))
		}
		if i == cursor {
			b.WriteString(SelectedItemStyle.Render(label))
		} else {
			b.WriteString(axisStyle.Render(label))
		}
		pos = start + lipgloss.Width(label) + 1
		b.WriteString(" ")
	}
	return b.String()
}

// drawPie draws the slices as one proportional strip followed by a legend of
// slice labels.
func drawPie(c *chart.Chart, width, height, cursor int) string {
	var strip strings.Builder
	used := 0
	for i, p := range c.Points {
		n := int(math.Round(p.Percent * float64(width)))
		if i == len(c.Points)-1 && c.Total > 0 {
			n = width - used
		}
		n = max(0, min(n, width-used))
		strip.WriteString(colored(p.Color).Render(strings.Repeat(glyphBar, n)))
		used += n
	}

	lines := []string{strip.String()}
	legendRows := height - 2
	if legendRows < 1 {
		return lines[0]
	}
	lines = append(lines, "")

	start := windowStart(len(c.Points), legendRows, cursor)
	for i, p := range visibleWindow(c.Points, legendRows, cursor) {
		label := fitLabel(p.Label, max(width-2, 1))
		if start+i == cursor {
			label = SelectedItemStyle.Render(label)
		}
		lines = append(lines, colored(p.Color).Render(glyphLegend)+" "+label)
	}
	return strings.Join(lines, "\n")
}

// fitLabel shortens s to width cells with a trailing ellipsis. Labels that
// already fit are returned unchanged.
func fitLabel(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
