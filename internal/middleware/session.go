package middleware

import (
	"net/http"

	"github.com/nhatduy27/Table-Management-sub000/internal/table"

	"github.com/gin-gonic/gin"
)

// TableSession guards customer-facing routes. The QR token travels in the
// X-Table-Token header; on success the verified tableID is attached to
// the context and scopes every cart and order operation.
func TableSession(tables *table.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Table-Token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing table token"})
			c.Abort()
			return
		}

		t, err := tables.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("tableID", t.ID)
		c.Set("tableNumber", t.Number)
		c.Next()
	}
}
