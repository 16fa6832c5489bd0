package cli

import (
	"context"
	"fmt"
	"strconv"

	"taskmaster/internal/errors"
)

// NearbyCommand handles the nearby command
type NearbyCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewNearbyCommand creates a new nearby command handler
func NewNearbyCommand(app *App) *NearbyCommand {
	return &NearbyCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the nearby command. It takes a latitude and longitude
// and reports incomplete tasks within the proximity threshold,
// requesting an alert for each.
func (c *NearbyCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "nearby", "usage: tm nearby <lat> <lng>")
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("lat", args[0], "must be a decimal latitude"))
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("lng", args[1], "must be a decimal longitude"))
	}

	tasks, err := c.app.api.CheckNearby(ctx, lat, lng)
	if err != nil {
		return c.errorHandler.Handle("check nearby tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks nearby")
		return nil
	}

	now := timeNow()
	fmt.Printf("%d task(s) nearby:\n", len(tasks))
	for _, task := range tasks {
		fmt.Printf("  %s\n", c.app.formatTask(task, now))
	}
	return nil
}
