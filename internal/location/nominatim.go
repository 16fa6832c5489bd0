package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"taskmaster/internal/errors"
)

// NominatimGeocoder implements Geocoder against a Nominatim-compatible
// HTTP endpoint.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder creates a geocoder for the given endpoint.
func NewNominatimGeocoder(baseURL, userAgent string, client *http.Client) *NominatimGeocoder {
	if client == nil {
		client = http.DefaultClient
	}
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    client,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// ReverseGeocode resolves a coordinate to a place name.
func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, coord Coordinate) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))

	var result nominatimResult
	if err := g.get(ctx, "/reverse", query, &result); err != nil {
		return "", errors.NewLocationError("reverse geocode", err)
	}
	if result.DisplayName == "" {
		return "", errors.NewLocationError("reverse geocode", fmt.Errorf("no place at %.5f,%.5f", coord.Latitude, coord.Longitude))
	}
	return result.DisplayName, nil
}

// Search returns ranked places matching the query.
func (g *NominatimGeocoder) Search(ctx context.Context, text string) ([]Place, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("q", text)

	var results []nominatimResult
	if err := g.get(ctx, "/search", query, &results); err != nil {
		return nil, errors.NewLocationError("place search", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		places = append(places, Place{
			Name:       r.DisplayName,
			Coordinate: Coordinate{Latitude: lat, Longitude: lng},
		})
	}
	return places, nil
}

func (g *NominatimGeocoder) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
