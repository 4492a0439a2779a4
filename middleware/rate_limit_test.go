package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedEngine(perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimitMiddleware(perMinute), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	r := newLimitedEngine(60) // burst 30

	assert.Equal(t, http.StatusOK, hit(r, "10.1.0.1:1000"))
	assert.Equal(t, http.StatusOK, hit(r, "10.1.0.1:1000"))
}

func TestRateLimit_RejectsWhenBurstExhausted(t *testing.T) {
	r := newLimitedEngine(2) // burst 1

	assert.Equal(t, http.StatusOK, hit(r, "10.2.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.2.0.1:1000"))
}

func TestRateLimit_SeparateBucketsPerIP(t *testing.T) {
	r := newLimitedEngine(2) // burst 1

	assert.Equal(t, http.StatusOK, hit(r, "10.3.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.3.0.1:1000"))
	assert.Equal(t, http.StatusOK, hit(r, "10.3.0.2:1000"))
}
