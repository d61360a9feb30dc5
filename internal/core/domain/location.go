// Package domain defines the records exchanged between the host pipeline and
// the address verification service.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is owned by the host. A verifier holds a mutable reference to it
// only for the duration of a single Verify call.
type Location struct {
	ID uuid.UUID `json:"id"`

	Street1    string `json:"street1"`
	Street2    string `json:"street2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	GeoPoint         *GeoPoint `json:"geo_point,omitempty"`
	IsGeoPointLocked bool      `json:"is_geo_point_locked"`

	StandardizedAt *time.Time `json:"standardized_at,omitempty"`
	GeocodedAt     *time.Time `json:"geocoded_at,omitempty"`

	StandardizeAttemptedAt      *time.Time `json:"standardize_attempted_at,omitempty"`
	StandardizeAttemptedService string     `json:"standardize_attempted_service,omitempty"`
	GeocodeAttemptedAt          *time.Time `json:"geocode_attempted_at,omitempty"`
	GeocodeAttemptedService     string     `json:"geocode_attempted_service,omitempty"`
}

// SetGeoPoint validates and stores a coordinate pair.
func (l *Location) SetGeoPoint(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return NewInvalidCoordinatesError(lat, lng)
	}
	l.GeoPoint = &GeoPoint{Latitude: lat, Longitude: lng}
	return nil
}

// MarkAttempted records that service attempted both standardization and
// geocoding at the given time, regardless of the outcome.
func (l *Location) MarkAttempted(service string, at time.Time) {
	standardizeAt := at
	geocodeAt := at

	l.StandardizeAttemptedService = service
	l.StandardizeAttemptedAt = &standardizeAt
	l.GeocodeAttemptedService = service
	l.GeocodeAttemptedAt = &geocodeAt
}
