package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type MapboxProvider struct {
	accessToken string
	httpClient  *http.Client
	baseURL     string
}

func NewMapboxProvider(accessToken string) *MapboxProvider {
	return &MapboxProvider{
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     "https://api.mapbox.com",
	}
}

// WithBaseURL points the provider at another API host.
func (m *MapboxProvider) WithBaseURL(baseURL string) *MapboxProvider {
	m.baseURL = baseURL
	return m
}

type mapboxPlace struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
}

// DrivingDistance geocodes both addresses and asks the Directions API for
// the fastest driving route between them.
func (m *MapboxProvider) DrivingDistance(ctx context.Context, origin, destination string) (*RouteDistance, error) {
	from, err := m.geocode(ctx, origin)
	if err != nil {
		return nil, err
	}
	to, err := m.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/directions/v5/mapbox/driving/%f,%f;%f,%f?overview=false&access_token=%s",
		m.baseURL, from.Center[0], from.Center[1], to.Center[0], to.Center[1], url.QueryEscape(m.accessToken))

	var directions struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"routes"`
	}
	if err := m.get(ctx, apiURL, &directions); err != nil {
		return nil, err
	}
	if directions.Code != "Ok" || len(directions.Routes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, directions.Code)
	}

	route := directions.Routes[0]
	return &RouteDistance{
		Origin:      from.PlaceName,
		Destination: to.PlaceName,
		Meters:      int(route.Distance),
		Duration:    time.Duration(route.Duration * float64(time.Second)),
	}, nil
}

func (m *MapboxProvider) geocode(ctx context.Context, address string) (*mapboxPlace, error) {
	apiURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?limit=1&access_token=%s",
		m.baseURL, url.PathEscape(address), url.QueryEscape(m.accessToken))

	var geocoded struct {
		Features []mapboxPlace `json:"features"`
	}
	if err := m.get(ctx, apiURL, &geocoded); err != nil {
		return nil, err
	}
	if len(geocoded.Features) == 0 || len(geocoded.Features[0].Center) != 2 {
		return nil, fmt.Errorf("%w: %s", ErrAddressNotFound, address)
	}
	return &geocoded.Features[0], nil
}

func (m *MapboxProvider) get(ctx context.Context, apiURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Mapbox API error: %s", string(body))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
