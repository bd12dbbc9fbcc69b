package tui

import (
	"fmt"
	"strconv"

	"github.com/h0rv/bpmdash/internal/chart"
	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/prefs"
)

// Unit labels for tooltip values.
const (
	UnitCompletedPRCs = "Completed PRCs"
	UnitOccurrences   = "Occurrences"
)

// Severity colors.
const (
	SeverityHighColor    = "#f44336"
	SeverityMediumColor  = "#ff9800"
	SeverityLowColor     = "#4caf50"
	SeverityUnknownColor = "#9e9e9e"
)

// PartsColor and LocationColor are the single fills of the parts and location charts.
const (
	PartsColor    = "#0D5FDC"
	LocationColor = "#00897b"
)

// SeverityColor maps a defect severity to its fill.
func SeverityColor(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return SeverityHighColor
	case domain.SeverityMedium:
		return SeverityMediumColor
	case domain.SeverityLow:
		return SeverityLowColor
	}
	return SeverityUnknownColor
}

func unitFormatter[T chart.Datum](unit string) func(float64, string, T) string {
	return func(value float64, _ string, _ T) string {
		return strconv.FormatFloat(value, 'f', -1, 64) + " " + unit
	}
}

// PartsLabel prefers "PartNumber - Description" over the axis label.
func PartsLabel(label string, item *domain.PartsChartData) string {
	if item == nil || item.PartNumber == "" {
		return label
	}
	if item.Description == "" {
		return item.PartNumber
	}
	return item.PartNumber + " - " + item.Description
}

// LocationLabel prefers "LocationName (LocationCode)" over the axis label.
func LocationLabel(label string, item *domain.LocationChartData) string {
	if item == nil || item.LocationName == "" {
		return label
	}
	if item.LocationCode == "" {
		return item.LocationName
	}
	return fmt.Sprintf("%s (%s)", item.LocationName, item.LocationCode)
}

// DefectLabel prefers "DefectName (severity)" over the axis label.
func DefectLabel(label string, item *domain.DefectChartData) string {
	if item == nil || item.DefectName == "" {
		return label
	}
	if item.Severity == "" {
		return item.DefectName
	}
	return fmt.Sprintf("%s (%s)", item.DefectName, item.Severity)
}

// NewPartsPanel creates the completed-PRCs-by-part chart slot.
func NewPartsPanel(store prefs.Store) *ChartPanel[domain.PartsChartData] {
	return NewChartPanel(store, PanelOptions[domain.PartsChartData]{
		Key:         prefs.KeyParts,
		Title:       "Completed PRCs by Part",
		Description: "Production request cycles closed per part number.",
		ValueLabel:  UnitCompletedPRCs,
		Config: chart.Config[domain.PartsChartData]{
			Color: PartsColor,
			Tooltip: chart.TooltipConfig[domain.PartsChartData]{
				Formatter:      unitFormatter[domain.PartsChartData](UnitCompletedPRCs),
				LabelFormatter: PartsLabel,
			},
		},
	})
}

// NewLocationPanel creates the completed-PRCs-by-location chart slot.
func NewLocationPanel(store prefs.Store) *ChartPanel[domain.LocationChartData] {
	return NewChartPanel(store, PanelOptions[domain.LocationChartData]{
		Key:         prefs.KeyLocation,
		Title:       "Completed PRCs by Location",
		Description: "Production request cycles closed per work station.",
		ValueLabel:  UnitCompletedPRCs,
		Config: chart.Config[domain.LocationChartData]{
			Color: LocationColor,
			Tooltip: chart.TooltipConfig[domain.LocationChartData]{
				Formatter:      unitFormatter[domain.LocationChartData](UnitCompletedPRCs),
				LabelFormatter: LocationLabel,
			},
		},
	})
}

// NewDefectPanel creates the defects-by-code chart slot, colored by severity.
func NewDefectPanel(store prefs.Store) *ChartPanel[domain.DefectChartData] {
	return NewChartPanel(store, PanelOptions[domain.DefectChartData]{
		Key:         prefs.KeyDefect,
		Title:       "Defects by Code",
		Description: "Occurrences per defect code. Red is high severity, orange medium, green low.",
		ValueLabel:  UnitOccurrences,
		Config: chart.Config[domain.DefectChartData]{
			GetColor: func(item domain.DefectChartData) string {
				return SeverityColor(item.Severity)
			},
			Tooltip: chart.TooltipConfig[domain.DefectChartData]{
				Formatter:      unitFormatter[domain.DefectChartData](UnitOccurrences),
				LabelFormatter: DefectLabel,
			},
		},
	})
}
