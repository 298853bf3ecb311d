package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

type GoogleMapsProvider struct {
	client *maps.Client
}

func NewGoogleMapsProvider(apiKey string, opts ...maps.ClientOption) (*GoogleMapsProvider, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleMapsProvider{
		client: client,
	}, nil
}

func (g *GoogleMapsProvider) DrivingDistance(ctx context.Context, origin, destination string) (*RouteDistance, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsImperial,
	}

	resp, err := g.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, ErrNoRoute
	}
	element := resp.Rows[0].Elements[0]
	switch element.Status {
	case "OK":
	case "NOT_FOUND":
		return nil, fmt.Errorf("%w: %s -> %s", ErrAddressNotFound, origin, destination)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, element.Status)
	}

	route := &RouteDistance{
		Origin:      origin,
		Destination: destination,
		Meters:      element.Distance.Meters,
		Duration:    element.Duration,
	}
	if len(resp.OriginAddresses) > 0 {
		route.Origin = resp.OriginAddresses[0]
	}
	if len(resp.DestinationAddresses) > 0 {
		route.Destination = resp.DestinationAddresses[0]
	}

	return route, nil
}
