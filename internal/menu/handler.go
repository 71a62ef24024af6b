package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menu/categories
// --------------------------------------------------
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// --------------------------------------------------
// GET /menu/items?category_id=
// --------------------------------------------------
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.ListAvailableItems(
		c.Request.Context(),
		c.Query("category_id"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// GET /menu/items/:id
// --------------------------------------------------
func (h *Handler) GetItem(c *gin.Context) {
	detail, err := h.service.GetItemDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu item"})
		return
	}
	c.JSON(http.StatusOK, detail)
}
