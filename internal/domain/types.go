// Package domain defines the normalized chart and metrics types shared by the
// renderer, the preference store and the dashboard.
package domain

// ChartType is the rendering mode of a chart slot.
type ChartType string

// ChartType constants. The set is closed; anything else is treated as unknown.
const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartArea ChartType = "area"
	ChartPie  ChartType = "pie"
)

// DefaultChartType is used when no preference has been stored.
const DefaultChartType = ChartBar

// ChartTypes lists every chart type in selector order.
var ChartTypes = []ChartType{ChartBar, ChartLine, ChartArea, ChartPie}

// Valid reports whether t is one of the four known chart types.
func (t ChartType) Valid() bool {
	switch t {
	case ChartBar, ChartLine, ChartArea, ChartPie:
		return true
	}
	return false
}

// ParseChartType converts s to a ChartType, returning false for unknown values.
func ParseChartType(s string) (ChartType, bool) {
	t := ChartType(s)
	return t, t.Valid()
}

// Next returns the chart type following t in selector order, wrapping around.
// Unknown types map to the first entry.
func (t ChartType) Next() ChartType {
	for i, ct := range ChartTypes {
		if ct == t {
			return ChartTypes[(i+1)%len(ChartTypes)]
		}
	}
	return ChartTypes[0]
}

// Field keys understood by Field implementations.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldValue        = "value"
	FieldPartNumber   = "partNumber"
	FieldDescription  = "description"
	FieldLocationCode = "locationCode"
	FieldLocationName = "locationName"
	FieldDefectCode   = "defectCode"
	FieldDefectName   = "defectName"
	FieldSeverity     = "severity"
)

// ChartDataItem is the base shape every chart dataset item satisfies.
type ChartDataItem struct {
	ID    string  // Stable item identifier
	Name  string  // Category axis label, truncated for pie slices
	Value float64 // Plotted value (counts/frequencies, non-negative)
}

// Base returns the item itself.
func (c ChartDataItem) Base() ChartDataItem {
	return c
}

// Field returns the value stored under key, or false if the item has no such field.
func (c ChartDataItem) Field(key string) (any, bool) {
	switch key {
	case FieldID:
		return c.ID, true
	case FieldName:
		return c.Name, true
	case FieldValue:
		return c.Value, true
	}
	return nil, false
}

// PartsChartData is a completed-PRC count for one part.
type PartsChartData struct {
	ChartDataItem
	PartNumber  string
	Description string
}

// Field extends ChartDataItem.Field with the part fields.
func (p PartsChartData) Field(key string) (any, bool) {
	switch key {
	case FieldPartNumber:
		return p.PartNumber, true
	case FieldDescription:
		return p.Description, true
	}
	return p.ChartDataItem.Field(key)
}

// LocationChartData is a completed-PRC count for one location.
type LocationChartData struct {
	ChartDataItem
	LocationCode string
	LocationName string
}

// Field extends ChartDataItem.Field with the location fields.
func (l LocationChartData) Field(key string) (any, bool) {
	switch key {
	case FieldLocationCode:
		return l.LocationCode, true
	case FieldLocationName:
		return l.LocationName, true
	}
	return l.ChartDataItem.Field(key)
}

// Severity is the derived defect category.
type Severity string

// Severity constants.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Severity thresholds on the occurrence count.
const (
	highSeverityAbove   = 30
	mediumSeverityAbove = 15
)

// SeverityFor derives a severity from an occurrence count.
func SeverityFor(occurrences float64) Severity {
	switch {
	case occurrences > highSeverityAbove:
		return SeverityHigh
	case occurrences > mediumSeverityAbove:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// DefectChartData is an occurrence count for one defect code.
type DefectChartData struct {
	ChartDataItem
	DefectCode string
	DefectName string
	Severity   Severity // Computed when the dataset is built, never by the renderer
}

// Field extends ChartDataItem.Field with the defect fields.
func (d DefectChartData) Field(key string) (any, bool) {
	switch key {
	case FieldDefectCode:
		return d.DefectCode, true
	case FieldDefectName:
		return d.DefectName, true
	case FieldSeverity:
		return string(d.Severity), true
	}
	return d.ChartDataItem.Field(key)
}

// Summary holds the headline numbers shown above the charts.
type Summary struct {
	TotalRequests     int
	OpenRequests      int
	CompletedPRCs     int
	AvgCycleTimeHours float64
}
