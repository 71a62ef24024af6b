package order

import (
	"errors"
	"net/http"

	"github.com/nhatduy27/Table-Management-sub000/internal/billing"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	service *Service
}

func NewStaffHandler(service *Service) *StaffHandler {
	return &StaffHandler{service: service}
}

// --------------------------------------------------
// GET /staff/orders?status=
// --------------------------------------------------
func (h *StaffHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// --------------------------------------------------
// PATCH /staff/orders/:id/items/:item_id/status
// --------------------------------------------------
func (h *StaffHandler) UpdateItemStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.UpdateItemStatus(
		c.Request.Context(),
		c.Param("id"),
		c.Param("item_id"),
		req.Status,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// --------------------------------------------------
// POST /staff/orders/:id/bill/confirm
// --------------------------------------------------
func (h *StaffHandler) ConfirmBill(c *gin.Context) {
	var req struct {
		DiscountType  string `json:"discount_type"`
		DiscountValue string `json:"discount_value"`
		TaxPercent    string `json:"tax_percent"`
		Note          string `json:"note"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Staff inputs are parsed strictly — a typo in a discount should be
	// rejected here, not silently billed as zero.
	discountValue, err := billing.ParseAmount(req.DiscountValue)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "discount_value is not a number"})
		return
	}
	taxPercent, err := billing.ParseAmount(req.TaxPercent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tax_percent is not a number"})
		return
	}

	result, err := h.service.ConfirmBill(
		c.Request.Context(),
		c.Param("id"),
		billing.Config{
			DiscountType:  req.DiscountType,
			DiscountValue: discountValue,
			TaxPercent:    taxPercent,
			Note:          req.Note,
		},
		req.PaymentMethod,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDiscount), errors.Is(err, ErrAlreadyPaid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm bill"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// POST /staff/orders/:id/cancel
// --------------------------------------------------
func (h *StaffHandler) CancelOrder(c *gin.Context) {
	if err := h.service.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrAlreadyPaid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": StatusCancelled})
}
