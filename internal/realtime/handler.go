package realtime

import (
	"log"
	"net/http"

	"github.com/nhatduy27/Table-Management-sub000/internal/table"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross origin is handled by the CORS layer, browsers send the QR
	// session token instead of cookies.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// --------------------------------------------------
// Handler
// --------------------------------------------------

type Handler struct {
	hub    *Hub
	tables *table.Service
}

func NewHandler(hub *Hub, tables *table.Service) *Handler {
	return &Handler{hub: hub, tables: tables}
}

// ServeTable upgrades a customer connection for one table room.
// GET /ws/:table_id?token=<qr session token>
func (h *Handler) ServeTable(c *gin.Context) {
	tableID := c.Param("table_id")

	t, err := h.tables.VerifyToken(c.Request.Context(), c.Query("token"))
	if err != nil || t.ID != tableID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid table token"})
		return
	}

	h.serve(c, tableID)
}

// ServeStaff upgrades a staff connection that receives events from every
// table. Mounted behind the staff auth middleware.
func (h *Handler) ServeStaff(c *gin.Context) {
	h.serve(c, StaffRoom)
}

func (h *Handler) serve(c *gin.Context, room string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("realtime: upgrade failed: %v", err)
		return
	}

	client := newClient(h.hub, room, conn)
	h.hub.register(client)

	go client.writePump()
	go client.readPump()
}
