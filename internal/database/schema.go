package database

import (
	"context"
	"database/sql"
)

// schema lists the DDL executed at startup.  Statements are idempotent
// so repeated starts against the same database are harmless.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id VARCHAR(64) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		poster VARCHAR(512) NOT NULL DEFAULT '',
		background_image VARCHAR(512) NOT NULL DEFAULT '',
		genres JSON NOT NULL,
		duration_min INT UNSIGNED NOT NULL,
		language VARCHAR(64) NOT NULL DEFAULT '',
		rating DOUBLE NOT NULL DEFAULT 0,
		description TEXT,
		release_date VARCHAR(10) NOT NULL DEFAULT '',
		studio VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS theaters (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(128) NOT NULL DEFAULT '',
		state VARCHAR(64) NOT NULL DEFAULT '',
		zip_code VARCHAR(16) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		capacity INT UNSIGNED NOT NULL DEFAULT 0,
		screens INT UNSIGNED NOT NULL DEFAULT 0,
		features JSON NOT NULL,
		operating_hours JSON NOT NULL,
		image VARCHAR(512) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS showtimes (
		id VARCHAR(64) PRIMARY KEY,
		movie_id VARCHAR(64) NOT NULL,
		theater_id VARCHAR(64) NOT NULL,
		show_date VARCHAR(10) NOT NULL,
		show_time VARCHAR(16) NOT NULL,
		price_cents INT UNSIGNED NOT NULL,
		KEY idx_showtimes_movie (movie_id)
	)`,
	`CREATE TABLE IF NOT EXISTS showtime_seats (
		showtime_id VARCHAR(64) NOT NULL,
		seat_id VARCHAR(16) NOT NULL,
		row_label VARCHAR(4) NOT NULL,
		seat_number INT UNSIGNED NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'available',
		price_cents INT UNSIGNED NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (showtime_id, seat_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(32) NOT NULL UNIQUE,
		movie_id VARCHAR(64) NOT NULL,
		showtime_id VARCHAR(64) NOT NULL,
		theater_id VARCHAR(64) NOT NULL,
		total_price_cents INT UNSIGNED NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS booking_seats (
		booking_id BIGINT UNSIGNED NOT NULL,
		seat_id VARCHAR(16) NOT NULL,
		row_label VARCHAR(4) NOT NULL,
		seat_number INT UNSIGNED NOT NULL,
		price_cents INT UNSIGNED NOT NULL,
		PRIMARY KEY (booking_id, seat_id)
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		admin_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		revoked_at TIMESTAMP NULL DEFAULT NULL,
		KEY idx_refresh_tokens_hash (token_hash)
	)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
