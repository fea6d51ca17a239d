package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	Init()
	before := testutil.ToFloat64(ProjectsCreated)
	ProjectsCreated.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ProjectsCreated))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio_projects_created_total")
}
