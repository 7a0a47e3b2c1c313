package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/SagarGautam07/TickBuzz/internal/config"
	"github.com/SagarGautam07/TickBuzz/internal/handler"
	"github.com/SagarGautam07/TickBuzz/internal/middleware"
)

// RegisterBooking registers the session-scoped booking flow. Every route
// runs behind the session middleware so a selection always exists, and
// behind the rate limiter keyed on the session token.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	// Buckets follow the session token, not the client IP, so one NAT
	// cannot starve unrelated sessions mid-flow. rlCfg is a copy; the
	// public routes keep the configured strategy.
	rlCfg.KeyStrategy = "caller_route"

	g := e.Group("/v1",
		middleware.Session(),
		middleware.NewTokenBucket(rlCfg, rdb),
	)

	g.GET("/session", b.GetSession)
	g.POST("/session/movie", b.SelectMovie)
	g.POST("/session/showtime", b.SelectShowtime)
	g.POST("/session/seats", b.SelectSeat)
	g.DELETE("/session/seats/:seatId", b.DeselectSeat)
	g.DELETE("/session/seats", b.ClearSeats)
	g.POST("/session/reset", b.Reset)

	g.POST("/bookings", b.Confirm)
	g.GET("/bookings/:code", b.GetBooking)
}
