package router

import (
	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/handler"
	"github.com/SagarGautam07/TickBuzz/internal/middleware"
)

// RegisterAdmin registers the admin auth endpoints and the protected
// catalog management routes. Login and refresh are open; everything else
// requires a valid access token with the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler,
	movies *handler.AdminMovieHandler, theaters *handler.AdminTheaterHandler,
	bookings *handler.AdminBookingHandler, jwtSecret string) {

	open := e.Group("/v1/admin")
	open.POST("/login", a.Login)
	open.POST("/refresh", a.Refresh)
	open.POST("/logout", a.Logout)

	g := e.Group("/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.AdminRole),
	)
	g.GET("/me", a.Me)

	g.GET("/movies", movies.List)
	g.POST("/movies", movies.Create)
	g.PUT("/movies/:id", movies.Update)
	g.DELETE("/movies/:id", movies.Delete)

	g.GET("/theaters", theaters.List)
	g.POST("/theaters", theaters.Create)
	g.PUT("/theaters/:id", theaters.Update)
	g.DELETE("/theaters/:id", theaters.Delete)

	g.GET("/bookings", bookings.List)
}
