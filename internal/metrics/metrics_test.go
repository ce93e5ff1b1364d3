package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.Records.WithLabelValues("ok").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Records.WithLabelValues("ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Records.WithLabelValues("ok")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.LedgerHeight.Set(3)
	m.Submissions.WithLabelValues("contact", "ok").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hefin_ledger_height 3")
	assert.Contains(t, string(body), `hefin_forms_submissions_total{kind="contact",result="ok"} 1`)
}

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "error", Result(errors.New("boom")))
}
