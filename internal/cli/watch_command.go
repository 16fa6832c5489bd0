package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"taskmaster/internal/domain"
	"taskmaster/internal/location"
)

// WatchCommand handles the watch command
type WatchCommand struct {
	app    *App
	logger *zap.Logger
	input  io.Reader
}

// NewWatchCommand creates a new watch command handler reading location
// updates from the given input stream.
func NewWatchCommand(app *App, input io.Reader, logger *zap.Logger) *WatchCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WatchCommand{
		app:    app,
		logger: logger,
		input:  input,
	}
}

// Execute runs the watch command. It consumes "lat,lng" lines from the
// input stream and runs the nearby check on each position, printing
// alerts as tasks come into range. The loop ends at end of input or
// when the context is cancelled.
func (c *WatchCommand) Execute(ctx context.Context, args []string) error {
	provider := location.NewReaderProvider(c.input, c.logger)
	watcher := location.NewWatcher(provider, &printingChecker{inner: c.app.api, app: c.app}, c.logger)

	watcher.Start(ctx)
	watcher.Wait()
	return nil
}

// printingChecker wraps the nearby check and echoes results to stdout.
type printingChecker struct {
	inner location.NearbyChecker
	app   *App
}

func (p *printingChecker) CheckNearby(ctx context.Context, lat, lng float64) ([]*domain.Task, error) {
	nearby, err := p.inner.CheckNearby(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	for _, task := range nearby {
		fmt.Printf("Nearby: %s\n", p.app.formatTask(task, now))
	}
	return nearby, nil
}
