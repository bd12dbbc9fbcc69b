package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/h0rv/bpmdash/internal/chart"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// normalizeHex returns a six digit hex color without the leading '#'.
// Anything that is not a hex color maps to the chart default.
func normalizeHex(s string) string {
	m := hexColorPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		m = hexColorPattern.FindStringSubmatch(chart.DefaultColor)
	}
	hex := m[1]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return strings.ToUpper(hex)
}

func drawingColor(s string) drawing.Color {
	return drawing.ColorFromHex(normalizeHex(s))
}

// rgba renders s with the given opacity as a CSS rgba() string.
func rgba(s string, opacity float64) string {
	c := drawingColor(s)
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, opacity)
}
