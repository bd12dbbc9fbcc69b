package export

import (
	"fmt"
	"io"

	"github.com/h0rv/bpmdash/internal/chart"
	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	dataSheet       = "Chart"
	chartAnchor     = "F2"
	xlsxChartWidth  = 640
	xlsxChartHeight = 360
)

var xlsxChartTypes = map[domain.ChartType]excelize.ChartType{
	domain.ChartBar:  excelize.Col,
	domain.ChartLine: excelize.Line,
	domain.ChartArea: excelize.Area,
	domain.ChartPie:  excelize.Pie,
}

// writeXLSX writes the chart data to a sheet and adds a native chart over it.
// An empty chart still produces the header row.
func writeXLSX(w io.Writer, c *chart.Chart, opts Options) error {
	kind, ok := xlsxChartTypes[c.Kind]
	if !ok {
		return ErrNilChart
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Category", opts.ValueLabel, "Label", "Tooltip", "Color"}
	if err := f.SetSheetRow(dataSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range c.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		label := p.Label
		if label == "" {
			label = p.Category
		}
		row := []interface{}{
			p.Category,
			p.Value,
			label,
			p.Tooltip.Label + ": " + p.Tooltip.Value,
			p.Color,
		}
		if err := f.SetSheetRow(dataSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if !c.Empty() {
		last := len(c.Points) + 1
		series := excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$B$1", dataSheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", dataSheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", dataSheet, last),
		}
		if c.Kind != domain.ChartPie && !c.Cells {
			series.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{normalizeHex(c.Fill)}}
		}

		err := f.AddChart(dataSheet, chartAnchor, &excelize.Chart{
			Type:      kind,
			Series:    []excelize.ChartSeries{series},
			Title:     []excelize.RichTextRun{{Text: opts.Title}},
			Dimension: excelize.ChartDimension{Width: xlsxChartWidth, Height: xlsxChartHeight},
		})
		if err != nil {
			return fmt.Errorf("failed to add chart: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
