package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/stretchr/testify/assert"
)

func panicking(v any) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(v)
	})
}

func TestWithRecovery_HidesPanicOutsideDevelopment(t *testing.T) {
	h := newTestHandler(t, newTestServices(), func(cfg *config.StructuredConfig) {
		cfg.App.Environment = config.EnvProduction
	})

	rec := httptest.NewRecorder()
	h.withRecovery(panicking("nil map write")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestWithRecovery_ExposesPanicInDevelopment(t *testing.T) {
	h := newTestHandler(t, newTestServices(), func(cfg *config.StructuredConfig) {
		cfg.App.Environment = config.EnvDevelopment
	})

	rec := httptest.NewRecorder()
	h.withRecovery(panicking("nil map write")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, msgInternal, body["message"])
	assert.Equal(t, "nil map write", body["error"])
}

func TestWithRecovery_RepanicsOnAbort(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecovery(panicking(http.ErrAbortHandler)).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecovery_PassesThrough(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := httptest.NewRecorder()
	h.withRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}
