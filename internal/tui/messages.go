// Package tui provides the Bubble Tea models for the terminal dashboard.
package tui

import "github.com/h0rv/bpmdash/internal/metrics"

// SnapshotLoadedMsg is emitted when a metrics fetch completes.
type SnapshotLoadedMsg struct {
	Snapshot metrics.Snapshot
}

// ErrorMsg is emitted when an error occurs.
type ErrorMsg struct {
	Err error
}

// RefreshMsg asks the app to fetch a new snapshot.
type RefreshMsg struct{}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}
