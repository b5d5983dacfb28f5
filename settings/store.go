// Package settings holds the session flags that drive the network simulator.
package settings

import (
	"sync/atomic"

	"snackshop/models"
)

// Store holds the session settings. An explicit Store is passed to the
// components that read it; there is no package-level instance.
type Store struct {
	offlineMode     atomic.Bool
	simulateLatency atomic.Bool
	simulateErrors  atomic.Bool
}

// New creates a Store with the given initial flags
func New(initial models.Settings) *Store {
	s := &Store{}
	s.offlineMode.Store(initial.OfflineMode)
	s.simulateLatency.Store(initial.SimulateLatency)
	s.simulateErrors.Store(initial.SimulateErrors)
	return s
}

// OfflineMode reports whether the app behaves as if it had no network
func (s *Store) OfflineMode() bool { return s.offlineMode.Load() }

// SimulateLatency reports whether simulated calls are delayed
func (s *Store) SimulateLatency() bool { return s.simulateLatency.Load() }

// SimulateErrors reports whether simulated calls may fail at random
func (s *Store) SimulateErrors() bool { return s.simulateErrors.Load() }

// ToggleOfflineMode flips the offline flag and returns the new value
func (s *Store) ToggleOfflineMode() bool { return toggle(&s.offlineMode) }

// ToggleSimulateLatency flips the latency flag and returns the new value
func (s *Store) ToggleSimulateLatency() bool { return toggle(&s.simulateLatency) }

// ToggleSimulateErrors flips the error injection flag and returns the new value
func (s *Store) ToggleSimulateErrors() bool { return toggle(&s.simulateErrors) }

// Snapshot returns the current value of every flag
func (s *Store) Snapshot() models.Settings {
	return models.Settings{
		OfflineMode:     s.OfflineMode(),
		SimulateLatency: s.SimulateLatency(),
		SimulateErrors:  s.SimulateErrors(),
	}
}

func toggle(flag *atomic.Bool) bool {
	for {
		old := flag.Load()
		if flag.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
