package location

import (
	"context"
)

// Coordinate is a geographic position.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Place is one ranked result from a place search or a reverse geocode.
type Place struct {
	Name       string
	Coordinate Coordinate
}

// Provider is a feed of location updates. Updates stop when the channel
// closes; consumers must treat the stream as unbounded.
type Provider interface {
	Updates() <-chan Coordinate
}

// Geocoder resolves between coordinates and place names.
type Geocoder interface {
	// ReverseGeocode resolves a coordinate to a human-readable place name.
	ReverseGeocode(ctx context.Context, coord Coordinate) (string, error)

	// Search returns ranked places matching a free-text query.
	Search(ctx context.Context, query string) ([]Place, error)
}
