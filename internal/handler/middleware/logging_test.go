//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"regexp"
	"testing"

	"petshop-checkout/internal/handler/middleware"
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/reqctx"
	httptestutil "petshop-checkout/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLoggingRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		if id := reqctx.RequestID(c.Request.Context()); id == middleware.GetRequestID(c) {
			*seen = id
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("incoming id is kept and echoed", func(t *testing.T) {
		var seen string
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "req-abc")
		w := nethttptest.NewRecorder()

		newLoggingRouter(&seen).ServeHTTP(w, req)

		httptestutil.AssertHeaders(t, w, map[string]string{middleware.HeaderRequestID: "req-abc"})
		assert.Equal(t, "req-abc", seen)
	})

	t.Run("missing id is generated", func(t *testing.T) {
		var seen string
		w := httptestutil.PerformRequest(t, newLoggingRouter(&seen), http.MethodGet, "/ping", nil, "")

		id := w.Header().Get(middleware.HeaderRequestID)
		assert.Regexp(t, regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`), id)
		assert.Equal(t, id, seen)
	})
}
