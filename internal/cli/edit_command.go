package cli

import (
	"context"
	"fmt"

	"taskmaster/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command. The first argument is the task ID and
// the rest are key=value options; fields not mentioned keep their
// stored values.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: tm edit <id> [title=\"...\"] [key=value ...]")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	_, options, err := splitTitleAndOptions(args[1:])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	existing, err := c.app.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	title := existing.Title
	if t, ok := options["title"]; ok {
		title = t
		delete(options, "title")
	}

	form, err := c.app.buildForm(title, options)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	// Unmentioned fields keep their stored values on update.
	if form.Description == nil {
		desc := existing.Description
		form.Description = &desc
	}
	if _, ok := options["priority"]; !ok {
		form.Priority = existing.Priority
	}

	task, err := c.app.api.UpdateTask(ctx, id, form)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Printf("Updated task #%d: %s\n", task.ID, task.Title)
	return nil
}
