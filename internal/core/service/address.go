package service

import (
	"strings"
	"time"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildQuery joins the populated address fragments of a location into a
// free-text search query.
func BuildQuery(loc *domain.Location) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{loc.Street1, loc.Street2, loc.City, loc.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// BuildTags returns the analytics tag sent with each lookup. The provider
// never parses it.
func BuildTags(version, catalog string) string {
	if catalog == "" {
		return ""
	}
	return version + "," + catalog
}

// ApplyHit copies a matched hit onto the location and reports which result
// flags it earned.
func ApplyHit(loc *domain.Location, hit domain.Hit, now time.Time) domain.VerificationResult {
	loc.Street1 = hit.Line1
	loc.Street2 = hit.Line2
	loc.City = cityFor(hit)
	loc.State = hit.County
	loc.PostalCode = hit.Postcode

	standardizedAt := now
	loc.StandardizedAt = &standardizedAt
	result := domain.ResultStandardized

	if !hit.HasCoordinates() {
		return result
	}
	if err := loc.SetGeoPoint(*hit.Latitude, *hit.Longitude); err != nil {
		return result
	}

	geocodedAt := now
	loc.GeocodedAt = &geocodedAt
	return result | domain.ResultGeocoded
}

// cityFor prefers the dependant locality unless it merely repeats line 2,
// in which case the post town is used.
func cityFor(hit domain.Hit) string {
	if strings.TrimSpace(hit.DependantLocality) != "" && hit.DependantLocality != hit.Line2 {
		return hit.DependantLocality
	}
	return cases.Title(language.BritishEnglish).String(strings.ToLower(hit.PostTown))
}
