package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesCounters(t *testing.T) {
	CommandsDispatched.WithLabelValues("ping").Inc()
	Mentions.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `quip_commands_dispatched_total{command="ping"}`)
	assert.Contains(t, string(body), "quip_mentions_total")
}

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(HelpFallbacks)
	HelpFallbacks.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(HelpFallbacks))
}
