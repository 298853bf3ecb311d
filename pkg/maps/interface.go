package maps

import (
	"context"
	"errors"
	"time"
)

const MetersPerMile = 1609.344

var (
	ErrNoRoute         = errors.New("no driving route between addresses")
	ErrAddressNotFound = errors.New("address not found")
)

// DistanceProvider measures road distance between two free-form addresses.
type DistanceProvider interface {
	DrivingDistance(ctx context.Context, origin, destination string) (*RouteDistance, error)
}

type RouteDistance struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Meters      int           `json:"meters"`
	Duration    time.Duration `json:"duration"`
}

func (r *RouteDistance) Miles() float64 {
	return float64(r.Meters) / MetersPerMile
}
