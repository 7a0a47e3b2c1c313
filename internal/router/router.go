// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/SagarGautam07/TickBuzz/internal/config"
	"github.com/SagarGautam07/TickBuzz/internal/handler"
	"github.com/SagarGautam07/TickBuzz/internal/middleware"
)

// RegisterHealth exposes the liveness endpoint. No middleware applies so
// monitoring keeps working when Redis or the broker are down.
func RegisterHealth(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated catalog routes. Responses
// are cacheable and rate limited per client IP.
func RegisterPublic(e *echo.Echo, cat *handler.CatalogHandler, seats *handler.SeatHandler,
	cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {

	g := e.Group("/v1",
		middleware.NewTokenBucket(rlCfg, rdb),
	)

	cached := g.Group("",
		middleware.NewRedisCache(cacheCfg, rdb),
	)
	cached.GET("/movies", cat.ListMovies)
	cached.GET("/movies/:id", cat.GetMovie)
	cached.GET("/movies/:id/showtimes", cat.ListShowtimesByMovie)
	cached.GET("/theaters", cat.ListTheaters)
	cached.GET("/theaters/:id", cat.GetTheater)
	cached.GET("/search/movies", cat.SearchMovies)

	// Seat grids reflect live availability and the caller's own selection,
	// so they bypass the response cache but keep the session middleware
	// for the overlay.
	g.GET("/showtimes/:id/seats", seats.ListSeats, middleware.Session())
}
