package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVerifier struct {
	name     string
	verifyFn func(ctx context.Context, loc *domain.Location, force bool) (domain.VerificationResult, string)
}

func (m *mockVerifier) Name() string { return m.name }

func (m *mockVerifier) Verify(ctx context.Context, loc *domain.Location, force bool) (domain.VerificationResult, string) {
	return m.verifyFn(ctx, loc, force)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestMux(t *testing.T, v *mockVerifier) *http.ServeMux {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Register(v))

	mux := http.NewServeMux()
	NewHandlers(reg, "Ideal Postcodes", slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return rr, env
}

func TestVerifyLocation_Success(t *testing.T) {
	var gotForce bool
	v := &mockVerifier{
		name: "Ideal Postcodes",
		verifyFn: func(ctx context.Context, loc *domain.Location, force bool) (domain.VerificationResult, string) {
			gotForce = force
			assert.Equal(t, "12 Greek St", loc.Street1)
			assert.Equal(t, "W1D 4DL", loc.PostalCode)
			loc.City = "Soho"
			_ = loc.SetGeoPoint(51.5138, -0.1318)
			return domain.ResultStandardized | domain.ResultGeocoded, "Verified by Ideal Postcodes reference: 23747771"
		},
	}
	mux := newTestMux(t, v)

	body, _ := json.Marshal(map[string]any{
		"id":          "6f1c1a1e-8d8a-4c55-9f43-0d5f3f4d2a11",
		"street1":     "12 Greek St",
		"postal_code": "W1D 4DL",
		"country":     "GB",
	})

	rr, env := doRequest(t, mux, http.MethodPost, "/v1/locations/verify?force=true", body)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
	assert.True(t, gotForce)

	var data struct {
		Result   string          `json:"result"`
		Verified bool            `json:"verified"`
		Geocoded bool            `json:"geocoded"`
		Message  string          `json:"message"`
		Location domain.Location `json:"location"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "STANDARDIZED|GEOCODED", data.Result)
	assert.True(t, data.Verified)
	assert.True(t, data.Geocoded)
	assert.Equal(t, "Verified by Ideal Postcodes reference: 23747771", data.Message)
	assert.Equal(t, "6f1c1a1e-8d8a-4c55-9f43-0d5f3f4d2a11", data.Location.ID.String())
	assert.Equal(t, "Soho", data.Location.City)
	require.NotNil(t, data.Location.GeoPoint)
	assert.Equal(t, 51.5138, data.Location.GeoPoint.Latitude)
}

func TestVerifyLocation_SkippedKeepsStamps(t *testing.T) {
	v := &mockVerifier{
		name: "Ideal Postcodes",
		verifyFn: func(ctx context.Context, loc *domain.Location, force bool) (domain.VerificationResult, string) {
			return domain.ResultNone, ""
		},
	}
	mux := newTestMux(t, v)

	body := []byte(`{
		"street1": "12 Greek St",
		"standardized_at": "2024-05-01T10:00:00Z",
		"geocoded_at": "2024-05-01T10:00:01Z",
		"standardize_attempted_at": "2024-05-01T10:00:02Z",
		"standardize_attempted_service": "IdealPostcodes",
		"geocode_attempted_at": "2024-05-01T10:00:03Z",
		"geocode_attempted_service": "IdealPostcodes"
	}`)

	rr, env := doRequest(t, mux, http.MethodPost, "/v1/locations/verify", body)

	require.Equal(t, http.StatusOK, rr.Code)

	var data struct {
		Result   string          `json:"result"`
		Location domain.Location `json:"location"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "NONE", data.Result)

	loc := data.Location
	stamp := func(sec int) time.Time { return time.Date(2024, 5, 1, 10, 0, sec, 0, time.UTC) }
	require.NotNil(t, loc.StandardizedAt)
	require.NotNil(t, loc.GeocodedAt)
	require.NotNil(t, loc.StandardizeAttemptedAt)
	require.NotNil(t, loc.GeocodeAttemptedAt)
	assert.True(t, stamp(0).Equal(*loc.StandardizedAt))
	assert.True(t, stamp(1).Equal(*loc.GeocodedAt))
	assert.True(t, stamp(2).Equal(*loc.StandardizeAttemptedAt))
	assert.True(t, stamp(3).Equal(*loc.GeocodeAttemptedAt))
	assert.Equal(t, "IdealPostcodes", loc.StandardizeAttemptedService)
	assert.Equal(t, "IdealPostcodes", loc.GeocodeAttemptedService)
}

func TestVerifyLocation_LookupOutlivesRequestContext(t *testing.T) {
	var lookupErr error
	v := &mockVerifier{
		name: "Ideal Postcodes",
		verifyFn: func(ctx context.Context, loc *domain.Location, force bool) (domain.VerificationResult, string) {
			lookupErr = ctx.Err()
			return domain.ResultNone, ""
		},
	}
	mux := newTestMux(t, v)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/v1/locations/verify", bytes.NewReader([]byte(`{"street1":"12 Greek St"}`))).WithContext(ctx)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NoError(t, lookupErr)
}

func TestVerifyLocation_UnknownService(t *testing.T) {
	mux := newTestMux(t, &mockVerifier{name: "Ideal Postcodes"})

	rr, env := doRequest(t, mux, http.MethodPost, "/v1/locations/verify?service=Bing", []byte(`{}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, env.Success)
	assert.Equal(t, domain.ErrCodeUnknownVerifier, env.Error.Code)
}

func TestVerifyLocation_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		detail string
	}{
		{"malformed json", "/v1/locations/verify", `{"street1":`, "body"},
		{"bad force flag", "/v1/locations/verify?force=maybe", `{}`, "force"},
		{"country too long", "/v1/locations/verify", `{"street1":"1 High St","country":"GBR"}`, "Country"},
		{"latitude out of range", "/v1/locations/verify", `{"latitude":120,"longitude":0}`, "Latitude"},
		{"bad id", "/v1/locations/verify", `{"id":"not-a-uuid"}`, "ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newTestMux(t, &mockVerifier{name: "Ideal Postcodes"})

			rr, env := doRequest(t, mux, http.MethodPost, tt.target, []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "INVALID_INPUT", env.Error.Code)
			assert.Contains(t, env.Error.Details, tt.detail)
		})
	}
}

func TestListVerifiers(t *testing.T) {
	mux := newTestMux(t, &mockVerifier{name: "Ideal Postcodes"})

	rr, env := doRequest(t, mux, http.MethodGet, "/v1/verifiers", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Equal(t, []string{"Ideal Postcodes"}, names)
}

func TestHealth(t *testing.T) {
	mux := newTestMux(t, &mockVerifier{name: "Ideal Postcodes"})

	rr, env := doRequest(t, mux, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, env.Success)
}
