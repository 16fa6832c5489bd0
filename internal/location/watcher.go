package location

import (
	"context"

	"go.uber.org/zap"

	"taskmaster/internal/domain"
)

// NearbyChecker is the operation the watcher invokes on every location
// update. The API layer satisfies it.
type NearbyChecker interface {
	CheckNearby(ctx context.Context, lat, lng float64) ([]*domain.Task, error)
}

// Watcher consumes a location feed and runs the nearby check once per
// update. Updates are handled strictly in arrival order on a single
// goroutine, so a new update never overlaps a check still in flight.
type Watcher struct {
	provider Provider
	checker  NearbyChecker
	logger   *zap.Logger
	done     chan struct{}
}

// NewWatcher creates a watcher over the given provider.
func NewWatcher(provider Provider, checker NearbyChecker, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		provider: provider,
		checker:  checker,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start runs the watch loop in a new goroutine. The loop ends when the
// provider's channel closes or the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Wait blocks until the watch loop has finished.
func (w *Watcher) Wait() {
	<-w.done
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case coord, ok := <-w.provider.Updates():
			if !ok {
				return
			}
			w.handleUpdate(ctx, coord)
		}
	}
}

func (w *Watcher) handleUpdate(ctx context.Context, coord Coordinate) {
	nearby, err := w.checker.CheckNearby(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		w.logger.Warn("nearby check failed",
			zap.Float64("latitude", coord.Latitude),
			zap.Float64("longitude", coord.Longitude),
			zap.Error(err),
		)
		return
	}
	if len(nearby) > 0 {
		w.logger.Info("tasks nearby",
			zap.Int("count", len(nearby)),
			zap.Float64("latitude", coord.Latitude),
			zap.Float64("longitude", coord.Longitude),
		)
	}
}
