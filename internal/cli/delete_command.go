package cli

import (
	"context"
	"fmt"

	"taskmaster/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: tm delete <id>")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task #%d\n", id)
	return nil
}
