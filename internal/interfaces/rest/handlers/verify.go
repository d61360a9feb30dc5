package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/interfaces/rest"
	"github.com/go-playground/validator"
)

func (h *Handlers) VerifyLocation(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("service")
	if name == "" {
		name = h.defaultService
	}

	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			rest.WriteError(w, rest.NewInvalidInputError(err, map[string]string{"force": "must be a boolean"}), h.logger)
			return
		}
		force = parsed
	}

	verifier, err := h.registry.Get(name)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req rest.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, rest.NewInvalidInputError(err, map[string]string{"body": "malformed json"}), h.logger)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		rest.WriteError(w, rest.NewInvalidInputError(err, validationDetails(err)), h.logger)
		return
	}

	loc, err := req.ToLocation()
	if err != nil {
		rest.WriteError(w, rest.NewInvalidInputError(err, nil), h.logger)
		return
	}

	// The lookup runs to completion under the transport's own limits; the
	// request deadline only bounds the response.
	result, msg := verifier.Verify(context.WithoutCancel(r.Context()), loc, force)

	h.logger.Info("location verification finished",
		"service", name,
		"location_id", loc.ID,
		"result", result.String(),
	)

	rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    rest.ToVerifyResponse(loc, result, msg),
	})
}

func (h *Handlers) ListVerifiers(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    h.registry.Names(),
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = "failed " + fe.Tag() + " validation"
	}
	return details
}
