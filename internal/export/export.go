// Package export writes rendered charts to files: SVG and PNG through
// go-chart, interactive HTML through go-echarts and XLSX workbooks with a
// native chart through excelize.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/h0rv/bpmdash/internal/chart"
)

// Format is an export file format.
type Format string

// Supported formats.
const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatPNG, FormatHTML, FormatXLSX}

var (
	// ErrNilChart indicates the chart type was not recognized and nothing was rendered.
	ErrNilChart = errors.New("no chart to export")
	// ErrEmptyChart indicates the chart has no points to draw.
	ErrEmptyChart = errors.New("chart has no data")
	// ErrInsufficientData indicates a line or area chart with fewer than two points.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// Default image size in pixels.
const (
	DefaultWidth  = 900
	DefaultHeight = 420
)

// Options describe the exported document.
type Options struct {
	Title      string
	Subtitle   string
	ValueLabel string // Series name / value axis title
	Width      int
	Height     int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.ValueLabel == "" {
		o.ValueLabel = "Value"
	}
	return o
}

// ParseFormat converts s to a Format, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Write renders c in format to w.
func Write(w io.Writer, format Format, c *chart.Chart, opts Options) error {
	if c == nil {
		return ErrNilChart
	}
	opts = opts.withDefaults()

	switch format {
	case FormatSVG, FormatPNG:
		return writeImage(w, format, c, opts)
	case FormatHTML:
		return writeHTML(w, c, opts)
	case FormatXLSX:
		return writeXLSX(w, c, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
