package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable; required variables are enforced by must()
// and missing values abort startup with a fatal log message.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign admin JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for admin password hashing

	// SessionTTL bounds how long an idle booking selection survives
	// before the session store sweeps it.
	SessionTTL time.Duration

	// SeatFallbackShowtime names the showtime whose seat layout is
	// served for showtimes that have no inventory of their own.  Empty
	// disables the fallback so unknown showtimes report not-found.
	SeatFallbackShowtime string

	// DataDir points at the JSON fixture directory used to seed the
	// catalog, seat inventory and default admin on first start.
	DataDir string

	AdminEmail    string // default admin account created by the seeder
	AdminPassword string // default admin password (seed only)

	AMQPURL string // RabbitMQ connection URL for booking events (optional)
}

// Load reads configuration values from environment variables and
// returns a Config.
func Load() Config {
	return Config{
		Env:                  must("APP_ENV"),
		Port:                 must("APP_PORT"),
		DBUser:               must("DB_USER"),
		DBPass:               os.Getenv("DB_PASS"),
		DBHost:               must("DB_HOST"),
		DBPort:               must("DB_PORT"),
		DBName:               must("DB_NAME"),
		JWTSecret:            must("JWT_SECRET"),
		AccessTTLMin:         mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays:       mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:           mustInt("BCRYPT_COST"),
		SessionTTL:           envDuration("SESSION_TTL", 30*time.Minute),
		SeatFallbackShowtime: envDefault("SEAT_FALLBACK_SHOWTIME", "1"),
		DataDir:              envDefault("DATA_DIR", "data"),
		AdminEmail:           envDefault("ADMIN_EMAIL", "admin@tickbuzz.com"),
		AdminPassword:        os.Getenv("ADMIN_PASSWORD"),
		AMQPURL:              os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an
// integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// envDefault returns the variable's value or the default when unset.
// Unlike must(), an empty value is respected so a variable can be set
// to "" deliberately (used to disable the seat fallback).
func envDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// envDuration parses a Go duration string, falling back to def.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
