// Package geo integrates the public tile and reverse-geocoding services the
// map-based location picker depends on. Both endpoints are unauthenticated.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Place is what the location picker shows after the user drops a pin.
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Suburb      string  `json:"suburb,omitempty"`
	City        string  `json:"city,omitempty"`
}

// Geocoder resolves coordinates to addresses against a Nominatim-style
// endpoint.
type Geocoder struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewGeocoder constructs a geocoder. The user agent is mandatory for the
// public Nominatim instance and identifies this deployment.
func NewGeocoder(httpClient *http.Client, baseURL, userAgent string) *Geocoder {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Geocoder{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// Reverse resolves a coordinate to its nearest address.
func (g *Geocoder) Reverse(ctx context.Context, lat, lng float64) (Place, error) {
	ctx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "jsonv2")
	params.Set("accept-language", "vi")

	endpoint := fmt.Sprintf("%s/reverse?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode: build request: %w", err)
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Place{}, fmt.Errorf("reverse geocode: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		Address     struct {
			Suburb string `json:"suburb"`
			City   string `json:"city"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Place{}, fmt.Errorf("reverse geocode: decode response: %w", err)
	}

	place := Place{
		DisplayName: payload.DisplayName,
		Suburb:      payload.Address.Suburb,
		City:        payload.Address.City,
	}
	// Nominatim echoes coordinates as strings; fall back to the request pin
	// when they do not parse.
	place.Lat, place.Lng = lat, lng
	if v, err := strconv.ParseFloat(payload.Lat, 64); err == nil {
		place.Lat = v
	}
	if v, err := strconv.ParseFloat(payload.Lon, 64); err == nil {
		place.Lng = v
	}
	return place, nil
}

// TileURL returns the slippy-map tile address for the embedded map widget.
func TileURL(baseURL string, z, x, y int) string {
	if baseURL == "" {
		baseURL = "https://tile.openstreetmap.org"
	}
	return fmt.Sprintf("%s/%d/%d/%d.png", strings.TrimRight(baseURL, "/"), z, x, y)
}
