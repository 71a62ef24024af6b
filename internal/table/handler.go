package table

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
// POST /session/verify  (public — QR scan entry)
// --------------------------------------------------
func (h *Handler) VerifySession(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	t, err := h.service.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"table_id":     t.ID,
		"table_number": t.Number,
		"table_name":   t.Name,
	})
}

// --------------------------------------------------
// POST /admin/tables
// --------------------------------------------------
func (h *Handler) CreateTable(c *gin.Context) {
	var req struct {
		Number int    `json:"number"`
		Seats  int    `json:"seats"`
		Name   string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	t, token, err := h.service.CreateTable(c.Request.Context(), req.Number, req.Seats, req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"table":    t,
		"qr_token": token,
	})
}

// --------------------------------------------------
// GET /admin/tables
// --------------------------------------------------
func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.service.ListTables(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tables"})
		return
	}
	c.JSON(http.StatusOK, tables)
}

// --------------------------------------------------
// PUT /admin/tables/:id
// --------------------------------------------------
func (h *Handler) UpdateTable(c *gin.Context) {
	var req struct {
		Number int    `json:"number"`
		Seats  int    `json:"seats"`
		Name   string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	t := &DiningTable{
		ID:     c.Param("id"),
		Number: req.Number,
		Seats:  req.Seats,
		Name:   req.Name,
	}
	if err := h.service.UpdateTable(c.Request.Context(), t); err != nil {
		if errors.Is(err, ErrTableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// --------------------------------------------------
// POST /admin/tables/:id/deactivate
// --------------------------------------------------
func (h *Handler) DeactivateTable(c *gin.Context) {
	if err := h.service.SetActive(c.Request.Context(), c.Param("id"), false); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "table deactivated"})
}

// --------------------------------------------------
// POST /admin/tables/:id/qr/regenerate
// --------------------------------------------------
func (h *Handler) RegenerateQR(c *gin.Context) {
	token, err := h.service.RegenerateQR(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrTableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_token": token})
}
