package rest

import (
	"time"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
	"github.com/google/uuid"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// LocationRequest is the JSON body accepted by the verify endpoint.
type LocationRequest struct {
	ID               string   `json:"id" validate:"omitempty,uuid"`
	Street1          string   `json:"street1" validate:"max=100"`
	Street2          string   `json:"street2" validate:"max=100"`
	City             string   `json:"city" validate:"max=50"`
	State            string   `json:"state" validate:"max=50"`
	PostalCode       string   `json:"postal_code" validate:"max=50"`
	Country          string   `json:"country" validate:"omitempty,len=2"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	IsGeoPointLocked bool     `json:"is_geo_point_locked"`

	StandardizedAt              *time.Time `json:"standardized_at"`
	GeocodedAt                  *time.Time `json:"geocoded_at"`
	StandardizeAttemptedAt      *time.Time `json:"standardize_attempted_at"`
	StandardizeAttemptedService string     `json:"standardize_attempted_service" validate:"max=50"`
	GeocodeAttemptedAt          *time.Time `json:"geocode_attempted_at"`
	GeocodeAttemptedService     string     `json:"geocode_attempted_service" validate:"max=50"`
}

type VerifyResponse struct {
	Result   string          `json:"result"`
	Verified bool            `json:"verified"`
	Geocoded bool            `json:"geocoded"`
	Message  string          `json:"message"`
	Location domain.Location `json:"location"`
}

// ToLocation converts a validated request into a host location record. The
// stamps are carried through so a skipped verification echoes them unchanged.
func (r *LocationRequest) ToLocation() (*domain.Location, error) {
	loc := &domain.Location{
		Street1:          r.Street1,
		Street2:          r.Street2,
		City:             r.City,
		State:            r.State,
		PostalCode:       r.PostalCode,
		Country:          r.Country,
		IsGeoPointLocked: r.IsGeoPointLocked,

		StandardizedAt:              r.StandardizedAt,
		GeocodedAt:                  r.GeocodedAt,
		StandardizeAttemptedAt:      r.StandardizeAttemptedAt,
		StandardizeAttemptedService: r.StandardizeAttemptedService,
		GeocodeAttemptedAt:          r.GeocodeAttemptedAt,
		GeocodeAttemptedService:     r.GeocodeAttemptedService,
	}

	if r.ID != "" {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, err
		}
		loc.ID = id
	} else {
		loc.ID = uuid.New()
	}

	if r.Latitude != nil && r.Longitude != nil {
		if err := loc.SetGeoPoint(*r.Latitude, *r.Longitude); err != nil {
			return nil, err
		}
	}

	return loc, nil
}

func ToVerifyResponse(loc *domain.Location, result domain.VerificationResult, msg string) VerifyResponse {
	return VerifyResponse{
		Result:   result.String(),
		Verified: result.Verified(),
		Geocoded: result.Has(domain.ResultGeocoded),
		Message:  msg,
		Location: *loc,
	}
}
