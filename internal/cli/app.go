package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskmaster/internal/api"
	"taskmaster/internal/config"
	"taskmaster/internal/domain"
	"taskmaster/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return &App{
		api:    apiInstance,
		config: config.NewConfig(),
	}
}

// NewAppWithConfig creates a new CLI application instance with an explicit configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

func (a *App) dateFormat() string {
	return a.config.Time.DateFormat
}

func (a *App) timeFormat() string {
	return a.config.Time.TimeFormat
}

// parseTaskID parses a task ID argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("task_id", arg, "must be a numeric task ID")
	}
	return id, nil
}

// splitTitleAndOptions separates leading title words from trailing
// key=value options. The title ends at the first argument containing
// '='; everything after is parsed as options.
func splitTitleAndOptions(args []string) (string, map[string]string, error) {
	var titleWords []string
	options := make(map[string]string)
	inOptions := false

	for _, arg := range args {
		if idx := strings.Index(arg, "="); idx > 0 {
			inOptions = true
			key := strings.ToLower(arg[:idx])
			options[key] = arg[idx+1:]
			continue
		}
		if inOptions {
			return "", nil, errors.NewInvalidInputError("arguments", arg, "positional arguments must come before key=value options")
		}
		titleWords = append(titleWords, arg)
	}

	return strings.Join(titleWords, " "), options, nil
}

// buildForm translates key=value options into editor form fields.
func (a *App) buildForm(title string, options map[string]string) (domain.TaskForm, error) {
	form := domain.TaskForm{Title: title}

	for key, value := range options {
		switch key {
		case "desc", "description":
			v := value
			form.Description = &v
		case "due", "date":
			parsed, err := time.ParseInLocation(a.dateFormat(), value, time.Local)
			if err != nil {
				return form, errors.NewInvalidInputError("due", value, fmt.Sprintf("must match format %s", a.dateFormat()))
			}
			form.DueDate = &parsed
		case "time", "at":
			parsed, err := time.ParseInLocation(a.timeFormat(), value, time.Local)
			if err != nil {
				return form, errors.NewInvalidInputError("time", value, fmt.Sprintf("must match format %s", a.timeFormat()))
			}
			form.DueTime = &parsed
		case "priority":
			priority, ok := domain.ParsePriority(value)
			if !ok {
				return form, errors.NewInvalidInputError("priority", value, "must be none, low, medium, or high")
			}
			form.Priority = priority
		case "category":
			v := value
			form.Category = &v
		case "location", "place":
			v := value
			form.Location = &v
		case "lat":
			lat, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return form, errors.NewInvalidInputError("lat", value, "must be a decimal latitude")
			}
			form.Latitude = &lat
		case "lng", "lon":
			lng, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return form, errors.NewInvalidInputError("lng", value, "must be a decimal longitude")
			}
			form.Longitude = &lng
		default:
			return form, errors.NewInvalidInputError("option", key, "unknown option")
		}
	}

	return form, nil
}

// formatTask renders one task as a single display line.
func (a *App) formatTask(task *domain.Task, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d [%s] %s", task.ID, task.Status(now), task.Title)

	if task.Priority != domain.PriorityNone {
		fmt.Fprintf(&b, " (%s)", task.Priority)
	}

	if due, ok := task.DueInstant(); ok {
		fmt.Fprintf(&b, " due %s %s", due.Format(a.dateFormat()), due.Format(a.timeFormat()))
	} else if task.DueDate != nil {
		fmt.Fprintf(&b, " due %s", task.DueDate.Format(a.dateFormat()))
	}

	if task.Location != nil && *task.Location != "" {
		fmt.Fprintf(&b, " @ %s", *task.Location)
	}

	return b.String()
}
