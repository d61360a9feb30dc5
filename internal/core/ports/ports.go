package ports

import (
	"context"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
)

// AddressLookup defines the behavior of an external address lookup provider.
type AddressLookup interface {
	Lookup(ctx context.Context, query domain.LookupQuery) (*domain.LookupResult, error)
}

// Verifier is implemented by every address verification component a host can
// register. Verify never returns an error; failures are reported through the
// result flags and message.
type Verifier interface {
	Name() string
	Verify(ctx context.Context, location *domain.Location, force bool) (domain.VerificationResult, string)
}
