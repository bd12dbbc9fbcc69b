// Package prefs persists the chart type chosen for each dashboard chart slot.
// Reads and writes never fail from the caller's point of view: storage errors
// are logged and the caller gets its fallback.
package prefs

import (
	"errors"
	"fmt"

	"github.com/h0rv/bpmdash/internal/domain"
	"go.uber.org/zap"
)

// Keys for the dashboard chart slots. A new chart slot must mint its own key.
const (
	KeyParts    = "dashboard-chart-type-parts"
	KeyLocation = "dashboard-chart-type-location"
	KeyDefect   = "dashboard-chart-type-defect"
)

var (
	// ErrDuplicateKey indicates two chart slots share a storage key.
	ErrDuplicateKey = errors.New("duplicate preference key")
	// ErrEmptyKey indicates a chart slot was registered without a key.
	ErrEmptyKey = errors.New("empty preference key")
)

// Store loads and saves chart type preferences.
type Store interface {
	Load(key string, fallback domain.ChartType) domain.ChartType
	Save(key string, value domain.ChartType)
}

// Backend is the durable key/value medium behind a ChartTypeStore.
// Get reports found=false for a key that was never written.
type Backend interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// ChartTypeStore implements Store on top of a Backend.
type ChartTypeStore struct {
	backend Backend
	logger  *zap.Logger
}

// New creates a ChartTypeStore. A nil logger disables logging.
func New(backend Backend, logger *zap.Logger) *ChartTypeStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartTypeStore{
		backend: backend,
		logger:  logger.Named("prefs"),
	}
}

// Load returns the stored chart type for key, or fallback when nothing valid is stored
// or the backend cannot be read.
func (s *ChartTypeStore) Load(key string, fallback domain.ChartType) domain.ChartType {
	raw, found, err := s.backend.Get(key)
	if err != nil {
		s.logger.Warn("Failed to read chart type preference",
			zap.String("key", key),
			zap.Error(err))
		return fallback
	}
	if !found {
		return fallback
	}

	ct, ok := domain.ParseChartType(raw)
	if !ok {
		s.logger.Debug("Ignoring unrecognized chart type preference",
			zap.String("key", key),
			zap.String("value", raw))
		return fallback
	}
	return ct
}

// Save writes value under key. Failures are logged and dropped.
func (s *ChartTypeStore) Save(key string, value domain.ChartType) {
	if !value.Valid() {
		s.logger.Warn("Refusing to save unrecognized chart type",
			zap.String("key", key),
			zap.String("value", string(value)))
		return
	}

	if err := s.backend.Set(key, string(value)); err != nil {
		s.logger.Warn("Failed to save chart type preference",
			zap.String("key", key),
			zap.String("value", string(value)),
			zap.Error(err))
	}
}

// CheckKeys verifies that every key is non-empty and unique.
func CheckKeys(keys ...string) error {
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			return ErrEmptyKey
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
