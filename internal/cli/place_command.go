package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"taskmaster/internal/errors"
	"taskmaster/internal/location"
)

// PlaceCommand handles the place command
type PlaceCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPlaceCommand creates a new place command handler
func NewPlaceCommand(app *App) *PlaceCommand {
	return &PlaceCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the place command. "tm place <query>" searches for
// matching places; "tm place resolve <lat> <lng>" reverse-geocodes a
// coordinate. Both require network connectivity.
func (c *PlaceCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "place", "usage: tm place <query> | tm place resolve <lat> <lng>")
	}

	if args[0] == "resolve" {
		return c.resolve(ctx, args[1:])
	}
	return c.search(ctx, strings.Join(args, " "))
}

func (c *PlaceCommand) search(ctx context.Context, query string) error {
	places, err := c.app.api.SearchPlaces(ctx, query)
	if err != nil {
		return c.errorHandler.Handle("search places", err)
	}

	if len(places) == 0 {
		fmt.Println("No places found")
		return nil
	}

	for _, place := range places {
		fmt.Printf("%s (%.5f, %.5f)\n", place.Name, place.Coordinate.Latitude, place.Coordinate.Longitude)
	}
	return nil
}

func (c *PlaceCommand) resolve(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "place resolve", "usage: tm place resolve <lat> <lng>")
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("lat", args[0], "must be a decimal latitude"))
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return c.errorHandler.HandleSimple(errors.NewInvalidInputError("lng", args[1], "must be a decimal longitude"))
	}

	name, err := c.app.api.ResolvePlace(ctx, location.Coordinate{Latitude: lat, Longitude: lng})
	if err != nil {
		return c.errorHandler.Handle("resolve place", err)
	}

	fmt.Println(name)
	return nil
}
