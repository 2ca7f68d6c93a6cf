package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordLogin(t *testing.T) {
	m := NewMetrics()

	m.RecordLogin(OutcomeSuccess)
	m.RecordLogin(OutcomeInvalid)
	m.RecordLogin(OutcomeInvalid)

	require.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues(OutcomeSuccess)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues(OutcomeInvalid)))
}

func TestMetrics_RecordRegistration(t *testing.T) {
	m := NewMetrics()
	m.RecordRegistration()
	require.Equal(t, 1.0, testutil.ToFloat64(m.Registrations))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.RecordLogin(OutcomeSuccess)
		m.RecordRegistration()
		m.TrackLockoutEntries(func() int { return 1 })
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.TrackLockoutEntries(func() int { return 7 })
	m.RecordLogin(OutcomeLockedOut)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "folio_lockout_entries 7")
	require.Contains(t, string(body), `folio_login_attempts_total{outcome="locked_out"} 1`)
	require.Contains(t, string(body), "go_goroutines")
}
