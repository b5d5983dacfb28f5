package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"snackshop/models"
)

// SnapshotStore persists the current lines of a cart
type SnapshotStore interface {
	Save(ctx context.Context, items []models.CartItem) error
}

// SnapshotWriter is an Observer that keeps a SnapshotStore in step with the
// cart. Stale notifications are dropped so the store never moves backwards.
type SnapshotWriter struct {
	store   SnapshotStore
	logger  *zap.Logger
	timeout time.Duration

	mu    sync.Mutex
	saved uint64
}

// NewSnapshotWriter creates a writer over store
func NewSnapshotWriter(store SnapshotStore, logger *zap.Logger) *SnapshotWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotWriter{store: store, logger: logger, timeout: 5 * time.Second}
}

// CartChanged saves items if version is newer than the last saved one.
// Save failures are logged; the in-memory cart stays authoritative.
func (w *SnapshotWriter) CartChanged(items []models.CartItem, version uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if version <= w.saved {
		w.logger.Debug("skipping stale cart snapshot",
			zap.Uint64("version", version),
			zap.Uint64("saved", w.saved))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.store.Save(ctx, items); err != nil {
		w.logger.Error("failed to save cart snapshot",
			zap.Uint64("version", version),
			zap.Int("lines", len(items)),
			zap.Error(err))
		return
	}
	w.saved = version
}

// SavedVersion returns the last version written to the store
func (w *SnapshotWriter) SavedVersion() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.saved
}
