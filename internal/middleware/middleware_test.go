package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware_PropagatesLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		GetLoggerFromCtx(c.Request.Context()).Info("from handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	out := buf.String()
	assert.Contains(t, out, `"msg":"from handler"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"msg":"Request completed"`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(req.Context()))
}

func TestActorMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ActorMiddleware())
	r.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, GetActorFromContext(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
	assert.Equal(t, DefaultActor, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(ActorHeader, " dara ")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "dara", w.Body.String())
}

func TestRateLimit_InMemory(t *testing.T) {
	lim, err := NewLimiter("2-M", nil)
	require.NoError(t, err)

	r := gin.New()
	r.Use(RateLimit(lim))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewLimiter("lots", nil)
	assert.Error(t, err)
}
