package order

import (
	"errors"
	"net/http"

	"pizzeria/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type quoteRequest struct {
	Size     string   `json:"size"`
	Toppings []string `json:"toppings"`
}

// --------------------------------------------------
// Price an order
// --------------------------------------------------
func (h *Handler) CreateQuote(c *gin.Context) {
	userID := c.GetString("userID")

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size is required"})
		return
	}

	result, err := h.service.PriceQuote(
		c.Request.Context(),
		userID,
		req.Size,
		req.Toppings,
	)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// --------------------------------------------------
// Quote history for the caller
// --------------------------------------------------
func (h *Handler) ListMyQuotes(c *gin.Context) {
	userID := c.GetString("userID")

	quotes, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}
