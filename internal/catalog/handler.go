package catalog

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// Public catalog browsing
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sizes":    h.catalog.Sizes(),
		"toppings": h.catalog.Toppings(),
	})
}

// --------------------------------------------------
// Admin: upload printable menu card
// --------------------------------------------------

type AdminHandler struct {
	storage Storage
}

func NewAdminHandler(storage Storage) *AdminHandler {
	return &AdminHandler{storage: storage}
}

var allowedCardExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

func (h *AdminHandler) UploadMenuCard(c *gin.Context) {
	file, header, err := c.Request.FormFile("menu_card")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_card is required"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedCardExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file type not allowed"})
		return
	}

	key := fmt.Sprintf("menu-cards/%s%s", uuid.New().String(), ext)

	url, err := h.storage.Upload(
		c.Request.Context(),
		key,
		file,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"object_key": key,
		"url":        url,
	})
}
