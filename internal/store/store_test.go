package store

import (
	"testing"
	"time"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures
func createTestSnapshot() metrics.Snapshot {
	snap := metrics.Sample()
	snap.FetchedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return snap
}

// TestNew verifies store initialization
func TestNew(t *testing.T) {
	s := New(nil)
	assert.NotNil(t, s)
	assert.False(t, s.HasSnapshot())
	assert.Empty(t, s.Parts())
	assert.True(t, s.FetchedAt().IsZero())

	_, err := s.Summary()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSetSnapshot(t *testing.T) {
	s := New(nil)
	snap := createTestSnapshot()

	s.SetSnapshot(snap)

	require.True(t, s.HasSnapshot())
	summary, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, snap.Summary, summary)
	assert.Equal(t, snap.FetchedAt, s.FetchedAt())

	assert.Len(t, s.Parts(), len(snap.Parts))
	assert.Len(t, s.Locations(), len(snap.Locations))
	assert.Len(t, s.Defects(), len(snap.Defects))
	assert.Len(t, s.LocationRows(""), 5)

	// Severity is derived once when the snapshot is set.
	defects := s.Defects()
	assert.Equal(t, "GC-01", defects[0].DefectCode)
	assert.Equal(t, domain.SeverityHigh, defects[0].Severity)
}

func TestDatasets_Immutability(t *testing.T) {
	s := New(nil)
	s.SetSnapshot(createTestSnapshot())

	parts := s.Parts()
	parts[0].Name = "changed"

	assert.Equal(t, "P001", s.Parts()[0].Name)
}

func TestLocationRows_Filter(t *testing.T) {
	s := New(nil)
	s.SetSnapshot(createTestSnapshot())

	t.Run("by code", func(t *testing.T) {
		rows := s.LocationRows("lam-")
		require.Len(t, rows, 2)
		assert.Equal(t, "LAM-1", rows[0].Leaf().Code)
	})

	t.Run("by ancestor name", func(t *testing.T) {
		rows := s.LocationRows("assembly hall")
		assert.Len(t, rows, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, s.LocationRows("paint shop"))
	})
}

func TestReset(t *testing.T) {
	s := New(nil)
	s.SetSnapshot(createTestSnapshot())

	s.Reset()

	assert.False(t, s.HasSnapshot())
	assert.Empty(t, s.Defects())
	assert.Empty(t, s.LocationRows(""))
}
