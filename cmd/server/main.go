package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/SagarGautam07/TickBuzz/internal/booking"
	"github.com/SagarGautam07/TickBuzz/internal/config"
	"github.com/SagarGautam07/TickBuzz/internal/database"
	"github.com/SagarGautam07/TickBuzz/internal/handler"
	"github.com/SagarGautam07/TickBuzz/internal/queue"
	"github.com/SagarGautam07/TickBuzz/internal/repository"
	"github.com/SagarGautam07/TickBuzz/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(ctx, db, cfg.DataDir, cfg.AdminEmail, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("seed: %v", err)
	}

	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	movies := repository.NewMovieRepo(db)
	theaters := repository.NewTheaterRepo(db)
	showtimes := repository.NewShowtimeRepo(db)
	seats := repository.NewSeatRepo(db, cfg.SeatFallbackShowtime)
	bookings := repository.NewBookingRepo(db)
	admins := repository.NewAdminRepo(db)
	tokens := repository.NewTokenRepo(db)

	sessions := booking.NewStore(cfg.SessionTTL)
	sessions.StartJanitor(ctx, cfg.SessionTTL/2)

	auth := handler.NewAuthHandler(cfg, admins, tokens)
	catalog := handler.NewCatalogHandler(movies, theaters, showtimes)
	seatGrid := handler.NewSeatHandler(seats, sessions)
	flow := handler.NewBookingHandler(sessions, movies, theaters, showtimes, seats, bookings, cfg.AMQPURL)
	adminMovies := handler.NewAdminMovieHandler(movies)
	adminTheaters := handler.NewAdminTheaterHandler(theaters)
	adminBookings := handler.NewAdminBookingHandler(bookings)

	e := echo.New()
	e.HideBanner = true

	router.RegisterHealth(e)
	router.RegisterPublic(e, catalog, seatGrid, cacheCfg, rlCfg, rdb)
	router.RegisterBooking(e, flow, rlCfg, rdb)
	router.RegisterAdmin(e, auth, adminMovies, adminTheaters, adminBookings, cfg.JWTSecret)

	go func() {
		if err := queue.StartBookingConsumer(cfg.AMQPURL); err != nil {
			log.Printf("booking-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
