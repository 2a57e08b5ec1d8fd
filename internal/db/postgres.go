package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATALOG
	// -------------------------------
	sizesSQL := `
		CREATE TABLE IF NOT EXISTS catalog_sizes (
			label VARCHAR(50) PRIMARY KEY,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0)
		)
	`
	if _, err := db.Exec(ctx, sizesSQL); err != nil {
		return err
	}

	toppingsSQL := `
		CREATE TABLE IF NOT EXISTS catalog_toppings (
			label VARCHAR(50) PRIMARY KEY,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0)
		)
	`
	if _, err := db.Exec(ctx, toppingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// QUOTES
	// -------------------------------
	quotesSQL := `
		CREATE TABLE IF NOT EXISTS quotes (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			size VARCHAR(50) NOT NULL,
			toppings JSONB NOT NULL DEFAULT '[]',
			total DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, quotesSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
