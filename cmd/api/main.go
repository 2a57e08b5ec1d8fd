package main

import (
	"context"
	"log"
	"os"

	"pizzeria/internal/auth"
	"pizzeria/internal/catalog"
	"pizzeria/internal/db"
	"pizzeria/internal/metrics"
	"pizzeria/internal/order"
	"pizzeria/internal/router"
	"pizzeria/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	ctx := context.Background()

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	if err := catalogRepo.Seed(ctx); err != nil {
		log.Fatal("Catalog seed failed:", err)
	}

	cat, err := catalog.Load(ctx, catalogRepo)
	if err != nil {
		log.Fatal("Catalog load failed:", err)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(ctx)
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── METRICS ─────────────────────────
	reg := metrics.NewRegistry()

	// ───────────────────────── SERVICES ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)

	quoteRepo := order.NewPostgresRepository(pgDB)
	orderService := order.NewService(cat, quoteRepo, reg)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:         auth.NewHandler(authService),
		Catalog:      catalog.NewHandler(cat),
		CatalogAdmin: catalog.NewAdminHandler(r2Client),
		Order:        order.NewHandler(orderService),
		Metrics:      reg,
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
