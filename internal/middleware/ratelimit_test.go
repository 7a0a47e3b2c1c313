package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/SagarGautam07/TickBuzz/internal/config"
)

func rateContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/session/seats", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.9")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/session/seats")
	return c
}

func TestBuildRateKeyCallerRouteUsesSessionToken(t *testing.T) {
	c := rateContext(t)
	c.Set(contextKey, "tok-abc")

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "caller_route"}
	key := buildRateKey(cfg, c)

	assert.Equal(t, "rl:caller:session:tok-abc:route:POST /v1/session/seats", key)
}

func TestBuildRateKeyCallerPrefersAdminID(t *testing.T) {
	c := rateContext(t)
	c.Set(contextKey, "tok-abc")
	// JWTAuth stores the parsed subject claim as float64.
	c.Set("user_id", float64(7))

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "caller"}
	key := buildRateKey(cfg, c)

	assert.Equal(t, "rl:caller:admin:7", key)
}

func TestBuildRateKeyCallerFallsBackToIP(t *testing.T) {
	c := rateContext(t)

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "caller"}
	key := buildRateKey(cfg, c)

	assert.Equal(t, "rl:caller:ip:203.0.113.9", key)
}

func TestBuildRateKeyDefaultIPRoute(t *testing.T) {
	c := rateContext(t)
	c.Set(contextKey, "tok-abc")

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}
	key := buildRateKey(cfg, c)

	assert.Equal(t, "rl:ip:203.0.113.9:route:POST /v1/session/seats", key)
}
