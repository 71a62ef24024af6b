package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the customer cart. Every route runs behind the table
// session middleware, which puts the verified tableID on the context.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func tableID(c *gin.Context) string {
	return c.GetString("tableID")
}

type cartResponse struct {
	Items  []LineItem `json:"items"`
	Totals Totals     `json:"totals"`
}

func (h *Handler) respond(c *gin.Context, store *Store, status int) {
	c.JSON(status, cartResponse{
		Items:  store.Items(),
		Totals: store.Totals(),
	})
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	store := h.service.Open(c.Request.Context(), tableID(c))
	h.respond(c, store, http.StatusOK)
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID string   `json:"menu_item_id"`
		OptionIDs  []string `json:"option_ids"`
		Quantity   int      `json:"quantity"`
		Note       string   `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.MenuItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_item_id is required"})
		return
	}

	line, err := h.service.AddItem(
		c.Request.Context(),
		tableID(c),
		req.MenuItemID,
		req.OptionIDs,
		req.Quantity,
		req.Note,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, line)
}

// --------------------------------------------------
// PATCH /cart/items/:line_id/quantity
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	store := h.service.Open(c.Request.Context(), tableID(c))
	store.UpdateQuantity(c.Request.Context(), c.Param("line_id"), req.Quantity)
	h.respond(c, store, http.StatusOK)
}

// --------------------------------------------------
// PATCH /cart/items/:line_id/note
// --------------------------------------------------
func (h *Handler) UpdateNote(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	store := h.service.Open(c.Request.Context(), tableID(c))
	store.UpdateNote(c.Request.Context(), c.Param("line_id"), req.Note)
	h.respond(c, store, http.StatusOK)
}

// --------------------------------------------------
// DELETE /cart/items/:line_id
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	store := h.service.Open(c.Request.Context(), tableID(c))
	store.RemoveItem(c.Request.Context(), c.Param("line_id"))
	h.respond(c, store, http.StatusOK)
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) ClearCart(c *gin.Context) {
	store := h.service.Open(c.Request.Context(), tableID(c))
	store.Clear(c.Request.Context())
	h.respond(c, store, http.StatusOK)
}
