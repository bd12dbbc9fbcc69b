package api

import (
	"context"
	"fmt"
	"time"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

const dashboardQuery = `
	query DashboardMetrics {
		dashboard {
			summary {
				totalRequests
				openRequests
				completedPrcs
				avgCycleTimeHours
			}
			parts {
				partNumber
				description
				completed
			}
			locations {
				code
				name
				completed
			}
			defects {
				code
				name
				occurrences
			}
			locationHierarchy {
				id
				parentId
				level
				code
				name
			}
		}
	}
`

type dashboardResponse struct {
	Dashboard struct {
		Summary struct {
			TotalRequests     int     `json:"totalRequests"`
			OpenRequests      int     `json:"openRequests"`
			CompletedPRCs     int     `json:"completedPrcs"`
			AvgCycleTimeHours float64 `json:"avgCycleTimeHours"`
		} `json:"summary"`
		Parts             []metrics.PartMetric     `json:"parts"`
		Locations         []metrics.LocationMetric `json:"locations"`
		Defects           []metrics.DefectMetric   `json:"defects"`
		LocationHierarchy []metrics.LocationNode   `json:"locationHierarchy"`
	} `json:"dashboard"`
}

// Fetch loads one dashboard snapshot. It implements metrics.Source.
func (c *Client) Fetch(ctx context.Context) (metrics.Snapshot, error) {
	req := graphql.NewRequest(dashboardQuery)

	var resp dashboardResponse
	start := time.Now()
	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return metrics.Snapshot{}, fmt.Errorf("failed to fetch dashboard metrics: %w", err)
	}

	d := resp.Dashboard
	c.logger.Debug("Fetched dashboard metrics",
		zap.Int("parts", len(d.Parts)),
		zap.Int("locations", len(d.Locations)),
		zap.Int("defects", len(d.Defects)),
		zap.Duration("elapsed", time.Since(start)))

	return metrics.Snapshot{
		Summary: domain.Summary{
			TotalRequests:     d.Summary.TotalRequests,
			OpenRequests:      d.Summary.OpenRequests,
			CompletedPRCs:     d.Summary.CompletedPRCs,
			AvgCycleTimeHours: d.Summary.AvgCycleTimeHours,
		},
		Parts:     d.Parts,
		Locations: d.Locations,
		Defects:   d.Defects,
		Hierarchy: d.LocationHierarchy,
		FetchedAt: time.Now(),
	}, nil
}
