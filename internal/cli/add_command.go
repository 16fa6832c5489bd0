package cli

import (
	"context"
	"fmt"

	"taskmaster/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: tm add \"task title\" [key=value ...]")
	}

	title, options, err := splitTitleAndOptions(args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	form, err := c.app.buildForm(title, options)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if form.Description == nil {
		empty := ""
		form.Description = &empty
	}

	task, err := c.app.api.CreateTask(ctx, form)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task #%d: %s\n", task.ID, task.Title)
	return nil
}
