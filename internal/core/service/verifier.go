package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/ports"
)

const (
	// ComponentName is the name hosts register the verifier under.
	ComponentName = "Ideal Postcodes"
	// ServiceType is recorded on a location for every attempt.
	ServiceType = "IdealPostcodes"

	NoMatchMessage = "No match."

	// A prior attempt this recent is treated as a retry after another
	// service failed.
	retryWindow = 30 * time.Second
)

type statusTexter interface {
	StatusText() string
}

// AddressVerifier standardizes and geocodes UK addresses through an
// AddressLookup provider.
type AddressVerifier struct {
	lookup ports.AddressLookup
	tags   string
	logger *slog.Logger
	now    func() time.Time
}

func NewAddressVerifier(lookup ports.AddressLookup, tags string, logger *slog.Logger) *AddressVerifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddressVerifier{
		lookup: lookup,
		tags:   tags,
		logger: logger,
		now:    time.Now,
	}
}

var _ ports.Verifier = (*AddressVerifier)(nil)

func (v *AddressVerifier) Name() string {
	return ComponentName
}

// Verify looks up the location's address and, on a match, overwrites its
// address and coordinate fields. Calls that pass the guard always record an
// attempt on the location, whatever the outcome.
func (v *AddressVerifier) Verify(ctx context.Context, location *domain.Location, force bool) (domain.VerificationResult, string) {
	if !v.shouldVerify(location, force) {
		return domain.ResultNone, ""
	}

	result, msg := v.verify(ctx, location)

	location.MarkAttempted(ServiceType, v.now())
	return result, msg
}

func (v *AddressVerifier) shouldVerify(location *domain.Location, force bool) bool {
	if location == nil || location.IsGeoPointLocked {
		return false
	}
	if force || location.GeocodeAttemptedAt == nil {
		return true
	}
	return location.GeocodeAttemptedAt.After(v.now().Add(-retryWindow))
}

func (v *AddressVerifier) verify(ctx context.Context, location *domain.Location) (domain.VerificationResult, string) {
	query := domain.LookupQuery{
		Query: BuildQuery(location),
		Limit: 1,
		Tags:  v.tags,
	}

	res, err := v.lookup.Lookup(ctx, query)
	if err != nil {
		v.logger.Warn("address lookup failed",
			"location_id", location.ID,
			"error", err,
		)
		return domain.ResultConnectionError, failureMessage(err)
	}

	hit, ok := res.First()
	if !ok {
		v.logger.Info("address lookup returned no match", "location_id", location.ID)
		return domain.ResultNoMatch, NoMatchMessage
	}

	result := ApplyHit(location, hit, v.now())
	if hit.HasCoordinates() && !result.Has(domain.ResultGeocoded) {
		v.logger.Warn("ignoring out of range coordinates",
			"location_id", location.ID,
			"udprn", hit.UDPRN,
		)
	}

	v.logger.Info("address verified",
		"location_id", location.ID,
		"udprn", hit.UDPRN,
		"result", result.String(),
	)

	return result, fmt.Sprintf("Verified by %s reference: %d", ComponentName, hit.UDPRN)
}

func failureMessage(err error) string {
	var st statusTexter
	if errors.As(err, &st) {
		return st.StatusText()
	}
	return err.Error()
}
