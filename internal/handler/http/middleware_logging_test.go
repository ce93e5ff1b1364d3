package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectLogger attaches a zerolog logger writing to buf to the request.
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		status         int
		body           string
		expectedStatus float64
		expectedSize   float64
	}{
		{"ok with body", http.MethodGet, "/api/health", http.StatusOK, `{"success":true}`, 200, 16},
		{"created", http.MethodPost, "/api/patients", http.StatusCreated, `{}`, 201, 2},
		{"implicit 200", http.MethodGet, "/", 0, "hello", 200, 5},
		{"not found without body", http.MethodDelete, "/api/none", http.StatusNotFound, "", 404, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, newTestServices())
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.target, nil), &buf)
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			entry := lastEntry(t, &buf)
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, "192.0.2.1", entry["remote_ip"])
			assert.Equal(t, tt.expectedStatus, entry["status"])
			assert.Equal(t, tt.expectedSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := newTestHandler(t, newTestServices())
	var buf bytes.Buffer

	req := injectLogger(httptest.NewRequest(http.MethodGet, "/", nil), &buf)
	assert.Panics(t, func() {
		h.withLogging(panicking("boom")).ServeHTTP(httptest.NewRecorder(), req)
	})
}
