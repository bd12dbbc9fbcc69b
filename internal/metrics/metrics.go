// Package metrics holds the raw dashboard metrics and turns them into chart
// datasets.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/h0rv/bpmdash/internal/domain"
)

// PartMetric is the completed-PRC count for one part.
type PartMetric struct {
	PartNumber  string `json:"partNumber"`
	Description string `json:"description"`
	Completed   int    `json:"completed"`
}

// LocationMetric is the completed-PRC count for one location.
type LocationMetric struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
}

// DefectMetric is the occurrence count for one defect code.
type DefectMetric struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Occurrences int    `json:"occurrences"`
}

// Snapshot is one fetch of everything the dashboard shows.
type Snapshot struct {
	Summary   domain.Summary
	Parts     []PartMetric
	Locations []LocationMetric
	Defects   []DefectMetric
	Hierarchy []LocationNode
	FetchedAt time.Time
}

// Source produces snapshots.
type Source interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// PartsData converts part metrics to chart items, keeping input order.
func PartsData(parts []PartMetric) []domain.PartsChartData {
	out := make([]domain.PartsChartData, len(parts))
	for i, p := range parts {
		out[i] = domain.PartsChartData{
			ChartDataItem: domain.ChartDataItem{
				ID:    strconv.Itoa(i + 1),
				Name:  p.PartNumber,
				Value: float64(p.Completed),
			},
			PartNumber:  p.PartNumber,
			Description: p.Description,
		}
	}
	return out
}

// LocationData converts location metrics to chart items, keeping input order.
func LocationData(locations []LocationMetric) []domain.LocationChartData {
	out := make([]domain.LocationChartData, len(locations))
	for i, l := range locations {
		out[i] = domain.LocationChartData{
			ChartDataItem: domain.ChartDataItem{
				ID:    strconv.Itoa(i + 1),
				Name:  l.Code,
				Value: float64(l.Completed),
			},
			LocationCode: l.Code,
			LocationName: l.Name,
		}
	}
	return out
}

// DefectData converts defect metrics to chart items and derives each severity.
func DefectData(defects []DefectMetric) []domain.DefectChartData {
	out := make([]domain.DefectChartData, len(defects))
	for i, d := range defects {
		value := float64(d.Occurrences)
		out[i] = domain.DefectChartData{
			ChartDataItem: domain.ChartDataItem{
				ID:    strconv.Itoa(i + 1),
				Name:  d.Code,
				Value: value,
			},
			DefectCode: d.Code,
			DefectName: d.Name,
			Severity:   domain.SeverityFor(value),
		}
	}
	return out
}
