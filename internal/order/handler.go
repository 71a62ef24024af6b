package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the customer-facing order routes, behind the table
// session middleware.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /orders  (submit the cart)
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	o, err := h.service.Submit(c.Request.Context(), c.GetString("tableID"))
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit order"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// GET /orders/active
// --------------------------------------------------
func (h *Handler) GetActive(c *gin.Context) {
	view, err := h.service.GetActive(c.Request.Context(), c.GetString("tableID"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active order"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /orders/bill-request
// --------------------------------------------------
func (h *Handler) RequestBill(c *gin.Context) {
	o, err := h.service.RequestBill(c.Request.Context(), c.GetString("tableID"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active order"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to request bill"})
		return
	}

	c.JSON(http.StatusOK, o)
}
