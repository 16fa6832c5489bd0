package cli

import (
	"context"
	"fmt"
	"strings"

	"taskmaster/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command. Positional arguments form the search
// query; a trailing sort=duedate|priority|category option selects the
// ordering within each section.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	var queryWords []string
	criteria := domain.SortByDueDate

	for _, arg := range args {
		if strings.HasPrefix(strings.ToLower(arg), "sort=") {
			criteria = domain.ParseSortCriteria(strings.ToLower(arg[len("sort="):]))
			continue
		}
		queryWords = append(queryWords, arg)
	}

	view, err := c.app.api.ListGrouped(ctx, strings.Join(queryWords, " "), criteria)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	return c.printView(view)
}

// printView prints each category section with one line per task.
func (c *ListCommand) printView(view *domain.GroupedTaskView) error {
	if view.IsEmpty() {
		fmt.Println("No tasks found")
		return nil
	}

	now := timeNow()
	for i, category := range view.Order {
		if i > 0 {
			fmt.Println()
		}
		name := category
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Printf("%s\n", name)
		for _, task := range view.Sections[category] {
			fmt.Printf("  %s\n", c.app.formatTask(task, now))
		}
	}

	return nil
}
