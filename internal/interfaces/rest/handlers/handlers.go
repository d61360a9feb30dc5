package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/ports"
	"github.com/go-playground/validator"
)

// VerifierRegistry resolves verification components by name.
type VerifierRegistry interface {
	Get(name string) (ports.Verifier, error)
	Names() []string
}

type Handlers struct {
	registry       VerifierRegistry
	defaultService string
	validate       *validator.Validate
	logger         *slog.Logger
}

func NewHandlers(registry VerifierRegistry, defaultService string, logger *slog.Logger) *Handlers {
	return &Handlers{
		registry:       registry,
		defaultService: defaultService,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Register mounts every route on mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/locations/verify", h.VerifyLocation)
	mux.HandleFunc("GET /v1/verifiers", h.ListVerifiers)
	mux.HandleFunc("GET /healthz", h.Health)
}
