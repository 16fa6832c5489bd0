package cli

import (
	"context"
	"fmt"
)

// RemindCommand handles the remind command
type RemindCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRemindCommand creates a new remind command handler
func NewRemindCommand(app *App) *RemindCommand {
	return &RemindCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the remind command, re-registering due notifications
// for every incomplete task that has a full due instant.
func (c *RemindCommand) Execute(ctx context.Context, args []string) error {
	count, err := c.app.api.RefreshReminders(ctx)
	if err != nil {
		return c.errorHandler.Handle("refresh reminders", err)
	}

	fmt.Printf("Scheduled %d reminder(s)\n", count)
	return nil
}
