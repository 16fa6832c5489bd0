package cli

import (
	"context"
	"fmt"

	"taskmaster/internal/errors"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the complete command, toggling the completion flag of
// the given task.
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "complete", "usage: tm complete <id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.api.ToggleComplete(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	if task.IsComplete {
		fmt.Printf("Completed task #%d: %s\n", task.ID, task.Title)
	} else {
		fmt.Printf("Reopened task #%d: %s\n", task.ID, task.Title)
	}
	return nil
}
