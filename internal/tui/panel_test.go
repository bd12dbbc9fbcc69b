package tui

import (
	"testing"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/h0rv/bpmdash/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saved struct {
	key   string
	value domain.ChartType
}

// recordingStore is an in-memory prefs.Store that records every call.
type recordingStore struct {
	values map[string]domain.ChartType
	loads  []string
	saves  []saved
}

func newRecordingStore() *recordingStore {
	return &recordingStore{values: make(map[string]domain.ChartType)}
}

func (s *recordingStore) Load(key string, fallback domain.ChartType) domain.ChartType {
	s.loads = append(s.loads, key)
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

func (s *recordingStore) Save(key string, value domain.ChartType) {
	s.saves = append(s.saves, saved{key, value})
	s.values[key] = value
}

func TestChartPanel_LoadsOnce(t *testing.T) {
	ps := newRecordingStore()
	ps.values[prefs.KeyParts] = domain.ChartLine

	p := NewPartsPanel(ps)
	assert.Equal(t, domain.ChartLine, p.ChartType())

	p.SetData(metrics.PartsData(metrics.Sample().Parts))
	_ = p.View(60, 10, true)
	_ = p.Chart()
	assert.Equal(t, []string{prefs.KeyParts}, ps.loads)
}

func TestChartPanel_DefaultsToBar(t *testing.T) {
	p := NewDefectPanel(newRecordingStore())
	assert.Equal(t, domain.ChartBar, p.ChartType())
}

func TestChartPanel_WriteThrough(t *testing.T) {
	ps := newRecordingStore()
	p := NewLocationPanel(ps)

	p.Mount()
	require.Equal(t, []saved{{prefs.KeyLocation, domain.ChartBar}}, ps.saves)

	p.SetChartType(domain.ChartPie)
	assert.Equal(t, domain.ChartPie, p.ChartType())
	assert.Equal(t, saved{prefs.KeyLocation, domain.ChartPie}, ps.saves[1])

	p.SetChartType(domain.ChartType("radar"))
	assert.Equal(t, domain.ChartPie, p.ChartType())
	assert.Len(t, ps.saves, 2)
}

func TestChartPanel_RoundTripThroughChartTypeStore(t *testing.T) {
	ps := prefs.New(prefs.NewMemoryBackend(), nil)

	first := NewPartsPanel(ps)
	first.SetChartType(domain.ChartArea)

	second := NewPartsPanel(ps)
	assert.Equal(t, domain.ChartArea, second.ChartType())

	other := NewDefectPanel(ps)
	assert.Equal(t, domain.ChartBar, other.ChartType())
}

func TestChartPanel_Cursor(t *testing.T) {
	p := NewPartsPanel(newRecordingStore())

	_, ok := p.Tooltip()
	assert.False(t, ok)

	p.SetData(metrics.PartsData(metrics.Sample().Parts))
	p.MoveCursor(-1)
	assert.Equal(t, 0, p.Cursor())

	tip, ok := p.Tooltip()
	require.True(t, ok)
	assert.Equal(t, "P001 - Hull Mould Section A", tip.Label)
	assert.Equal(t, "15 Completed PRCs", tip.Value)

	p.MoveCursor(100)
	assert.Equal(t, len(p.Data())-1, p.Cursor())

	p.SetData(p.Data()[:2])
	assert.Equal(t, 1, p.Cursor())
}

func TestChartPanel_PropsRouteChangesToPanel(t *testing.T) {
	ps := newRecordingStore()
	p := NewPartsPanel(ps)

	props := p.Props(60, 10, true)
	require.True(t, props.HasSelector())
	require.True(t, props.Select(domain.ChartLine))

	assert.Equal(t, domain.ChartLine, p.ChartType())
	assert.Equal(t, domain.ChartLine, ps.values[prefs.KeyParts])
}

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		severity domain.Severity
		want     string
	}{
		{domain.SeverityHigh, "#f44336"},
		{domain.SeverityMedium, "#ff9800"},
		{domain.SeverityLow, "#4caf50"},
		{domain.Severity("critical"), "#9e9e9e"},
		{domain.Severity(""), "#9e9e9e"},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityColor(tt.severity))
		})
	}
}

func TestDefectPanel_ColorsBySeverity(t *testing.T) {
	p := NewDefectPanel(newRecordingStore())
	p.SetData(metrics.DefectData(metrics.Sample().Defects))

	for _, kind := range []domain.ChartType{domain.ChartBar, domain.ChartPie} {
		p.SetChartType(kind)
		c := p.Chart()
		require.NotNil(t, c)
		for i, item := range p.Data() {
			assert.Equal(t, SeverityColor(item.Severity), c.Points[i].Color, "%s point %d", kind, i)
		}
	}
}

func TestLabelFormatters(t *testing.T) {
	t.Run("parts", func(t *testing.T) {
		assert.Equal(t, "P001", PartsLabel("P001", nil))
		assert.Equal(t, "P001 - Hull", PartsLabel("x", &domain.PartsChartData{PartNumber: "P001", Description: "Hull"}))
		assert.Equal(t, "P001", PartsLabel("x", &domain.PartsChartData{PartNumber: "P001"}))
	})

	t.Run("location", func(t *testing.T) {
		assert.Equal(t, "LAM-1", LocationLabel("LAM-1", nil))
		assert.Equal(t, "Lamination Bay 1 (LAM-1)", LocationLabel("x", &domain.LocationChartData{LocationCode: "LAM-1", LocationName: "Lamination Bay 1"}))
		assert.Equal(t, "x", LocationLabel("x", &domain.LocationChartData{LocationCode: "LAM-1"}))
	})

	t.Run("defect", func(t *testing.T) {
		assert.Equal(t, "GC-01", DefectLabel("GC-01", nil))
		item := &domain.DefectChartData{DefectName: "Foreign Particle in Gel Coat", Severity: domain.SeverityHigh}
		assert.Equal(t, "Foreign Particle in Gel Coat (high)", DefectLabel("GC-01", item))
	})
}

func TestDefectPanel_Tooltip(t *testing.T) {
	p := NewDefectPanel(newRecordingStore())
	p.SetData(metrics.DefectData(metrics.Sample().Defects))

	tip, ok := p.Tooltip()
	require.True(t, ok)
	assert.Equal(t, "Foreign Particle in Gel Coat (high)", tip.Label)
	assert.Equal(t, "42 Occurrences", tip.Value)
}

func TestPanelKeysAreDistinct(t *testing.T) {
	ps := newRecordingStore()
	assert.NoError(t, prefs.CheckKeys(
		NewPartsPanel(ps).Key(),
		NewLocationPanel(ps).Key(),
		NewDefectPanel(ps).Key(),
	))
}
