package metrics

import (
	"context"
	"time"

	"github.com/h0rv/bpmdash/internal/domain"
)

// SampleSource serves a fixed snapshot. It backs the dashboard when no API
// endpoint is configured.
type SampleSource struct {
	Now func() time.Time
}

// Fetch implements Source.
func (s SampleSource) Fetch(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	snap := Sample()
	if s.Now != nil {
		snap.FetchedAt = s.Now()
	} else {
		snap.FetchedAt = time.Now()
	}
	return snap, nil
}

// Sample returns the built-in demo metrics.
func Sample() Snapshot {
	return Snapshot{
		Summary: domain.Summary{
			TotalRequests:     248,
			OpenRequests:      37,
			CompletedPRCs:     211,
			AvgCycleTimeHours: 18.5,
		},
		Parts: []PartMetric{
			{PartNumber: "P001", Description: "Hull Mould Section A", Completed: 15},
			{PartNumber: "P002", Description: "Deck Hatch Frame", Completed: 9},
			{PartNumber: "P003", Description: "Transom Reinforcement", Completed: 22},
			{PartNumber: "P004", Description: "Console Housing", Completed: 12},
			{PartNumber: "P005", Description: "Stringer Grid", Completed: 7},
			{PartNumber: "P006", Description: "Bulkhead Panel", Completed: 18},
		},
		Locations: []LocationMetric{
			{Code: "LAM-1", Name: "Lamination Bay 1", Completed: 34},
			{Code: "LAM-2", Name: "Lamination Bay 2", Completed: 27},
			{Code: "GEL-1", Name: "Gel Coat Booth", Completed: 19},
			{Code: "ASM-1", Name: "Assembly Line 1", Completed: 41},
			{Code: "QC-1", Name: "Final Inspection", Completed: 12},
		},
		Defects: []DefectMetric{
			{Code: "GC-01", Name: "Foreign Particle in Gel Coat", Occurrences: 42},
			{Code: "GC-02", Name: "Gel Coat Blistering", Occurrences: 18},
			{Code: "LM-01", Name: "Dry Spot in Laminate", Occurrences: 25},
			{Code: "LM-02", Name: "Air Void", Occurrences: 11},
			{Code: "AS-01", Name: "Misaligned Fitting", Occurrences: 6},
			{Code: "AS-02", Name: "Surface Scratch", Occurrences: 33},
		},
		Hierarchy: []LocationNode{
			{ID: "s1", Level: LevelSite, Code: "YARD", Name: "Main Yard"},
			{ID: "b1", ParentID: "s1", Level: LevelBuilding, Code: "B1", Name: "Moulding Hall"},
			{ID: "b2", ParentID: "s1", Level: LevelBuilding, Code: "B2", Name: "Assembly Hall"},
			{ID: "f1", ParentID: "b1", Level: LevelFloor, Code: "B1-G", Name: "Ground Floor"},
			{ID: "f2", ParentID: "b2", Level: LevelFloor, Code: "B2-G", Name: "Ground Floor"},
			{ID: "z1", ParentID: "f1", Level: LevelZone, Code: "LAM", Name: "Lamination"},
			{ID: "z2", ParentID: "f1", Level: LevelZone, Code: "GEL", Name: "Gel Coat"},
			{ID: "z3", ParentID: "f2", Level: LevelZone, Code: "ASM", Name: "Assembly"},
			{ID: "t1", ParentID: "z1", Level: LevelStation, Code: "LAM-1", Name: "Lamination Bay 1"},
			{ID: "t2", ParentID: "z1", Level: LevelStation, Code: "LAM-2", Name: "Lamination Bay 2"},
			{ID: "t3", ParentID: "z2", Level: LevelStation, Code: "GEL-1", Name: "Gel Coat Booth"},
			{ID: "t4", ParentID: "z3", Level: LevelStation, Code: "ASM-1", Name: "Assembly Line 1"},
			{ID: "t5", ParentID: "z3", Level: LevelStation, Code: "QC-1", Name: "Final Inspection"},
		},
	}
}
