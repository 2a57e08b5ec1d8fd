package router

import (
	"time"

	"pizzeria/internal/auth"
	"pizzeria/internal/catalog"
	"pizzeria/internal/metrics"
	"pizzeria/internal/middleware"
	"pizzeria/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects everything the router wires up.
type Handlers struct {
	Auth         *auth.Handler
	Catalog      *catalog.Handler
	CatalogAdmin *catalog.AdminHandler
	Order        *order.Handler
	Metrics      *metrics.Registry
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── PUBLIC CATALOG ─────────────────────────
	r.GET("/catalog", h.Catalog.Get)

	// ───────────────────────── QUOTES ─────────────────────────
	quotes := r.Group("/quotes")
	quotes.Use(middleware.AuthMiddleware())
	{
		quotes.POST("", h.Order.CreateQuote)
		quotes.GET("/me", h.Order.ListMyQuotes)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/menu-card", h.CatalogAdmin.UploadMenuCard)
	}

	// ───────────────────────── METRICS ─────────────────────────
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	return r
}
