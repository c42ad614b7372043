// Package geo estimates delivery routes between a seller and a buyer.
package geo

import (
	"math"
	"time"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Route is a straight-line delivery estimate.
type Route struct {
	DistanceKm float64       `json:"distance_km"`
	ETA        time.Duration `json:"-"`
	ETAMinutes int           `json:"eta_minutes"`
}

// RouteEstimator computes a distance and travel-time estimate between
// two coordinates. Implementations may call an external routing service;
// the default is a great-circle estimate.
type RouteEstimator interface {
	Estimate(from, to Point) Route
}

const (
	earthRadiusKm = 6371.0

	// averageSpeedKmh approximates coastal-road delivery speed.
	averageSpeedKmh = 30.0
)

// HaversineEstimator estimates routes with the haversine great-circle
// formula and a fixed average speed.
type HaversineEstimator struct{}

// NewHaversineEstimator returns the default estimator.
func NewHaversineEstimator() *HaversineEstimator {
	return &HaversineEstimator{}
}

func (e *HaversineEstimator) Estimate(from, to Point) Route {
	km := haversineKm(from, to)
	eta := time.Duration(km / averageSpeedKmh * float64(time.Hour))
	return Route{
		DistanceKm: math.Round(km*10) / 10,
		ETA:        eta,
		ETAMinutes: int(math.Ceil(eta.Minutes())),
	}
}

func haversineKm(from, to Point) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLat := (to.Latitude - from.Latitude) * math.Pi / 180
	dLng := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
