package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHandlerCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Handler())
	router.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("/ping/:id", "GET", "204"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping/1", nil))
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("/ping/:id", "GET", "204"))

	assert.Equal(t, before+1, after)
}

func TestObserveOperation(t *testing.T) {
	before := testutil.ToFloat64(RecordOperations.WithLabelValues("User", "create", "ok"))
	ObserveOperation("User", "create", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(RecordOperations.WithLabelValues("User", "create", "ok")))
}
