// Package store keeps the latest metrics snapshot and the chart datasets
// derived from it. Datasets are rebuilt once per snapshot, not per render.
package store

import (
	"errors"
	"strings"
	"time"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/metrics"
	"go.uber.org/zap"
)

// ErrNoSnapshot indicates no snapshot has been loaded yet.
var ErrNoSnapshot = errors.New("no metrics snapshot loaded")

// Store manages the in-memory dashboard state.
type Store struct {
	logger *zap.Logger

	snapshot *metrics.Snapshot

	// Derived datasets, rebuilt by SetSnapshot
	parts        []domain.PartsChartData
	locations    []domain.LocationChartData
	defects      []domain.DefectChartData
	locationRows []metrics.LocationRow
}

// New creates an empty Store. A nil logger disables logging.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger.Named("store")}
}

// SetSnapshot replaces the snapshot and rebuilds every dataset.
func (s *Store) SetSnapshot(snap metrics.Snapshot) {
	s.snapshot = &snap
	s.parts = metrics.PartsData(snap.Parts)
	s.locations = metrics.LocationData(snap.Locations)
	s.defects = metrics.DefectData(snap.Defects)
	s.locationRows = metrics.FlattenHierarchy(snap.Hierarchy, s.logger)
}

// HasSnapshot reports whether a snapshot has been loaded.
func (s *Store) HasSnapshot() bool {
	return s.snapshot != nil
}

// Summary returns the headline numbers, or ErrNoSnapshot.
func (s *Store) Summary() (domain.Summary, error) {
	if s.snapshot == nil {
		return domain.Summary{}, ErrNoSnapshot
	}
	return s.snapshot.Summary, nil
}

// FetchedAt returns when the current snapshot was fetched.
func (s *Store) FetchedAt() time.Time {
	if s.snapshot == nil {
		return time.Time{}
	}
	return s.snapshot.FetchedAt
}

// Parts returns a copy of the parts dataset.
func (s *Store) Parts() []domain.PartsChartData {
	return append([]domain.PartsChartData{}, s.parts...)
}

// Locations returns a copy of the locations dataset.
func (s *Store) Locations() []domain.LocationChartData {
	return append([]domain.LocationChartData{}, s.locations...)
}

// Defects returns a copy of the defects dataset.
func (s *Store) Defects() []domain.DefectChartData {
	return append([]domain.DefectChartData{}, s.defects...)
}

// LocationRows returns the flattened location hierarchy rows whose codes or
// names contain filter (case-insensitive). An empty filter returns all rows.
func (s *Store) LocationRows(filter string) []metrics.LocationRow {
	filter = strings.ToLower(strings.TrimSpace(filter))
	rows := make([]metrics.LocationRow, 0, len(s.locationRows))
	for _, row := range s.locationRows {
		if filter == "" || rowMatches(row, filter) {
			rows = append(rows, row)
		}
	}
	return rows
}

func rowMatches(row metrics.LocationRow, filter string) bool {
	for _, level := range row.Levels {
		if strings.Contains(strings.ToLower(level.Code), filter) ||
			strings.Contains(strings.ToLower(level.Name), filter) {
			return true
		}
	}
	return false
}

// Reset drops the snapshot and every dataset.
func (s *Store) Reset() {
	s.snapshot = nil
	s.parts = nil
	s.locations = nil
	s.defects = nil
	s.locationRows = nil
}
