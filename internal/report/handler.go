package report

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DailyReader is the slice of the repository the handler needs.
type DailyReader interface {
	Daily(ctx context.Context, from, to time.Time) ([]DailyRow, error)
}

type Handler struct {
	repo DailyReader
}

func NewHandler(repo DailyReader) *Handler {
	return &Handler{repo: repo}
}

// GET /admin/reports/daily?from=2026-08-01&to=2026-08-31
// Dates are inclusive, defaults cover the last 7 days.
func (h *Handler) Daily(c *gin.Context) {
	to := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -7)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		return
	}

	rows, err := h.repo.Daily(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from": from.Format("2006-01-02"),
		"to":   to.AddDate(0, 0, -1).Format("2006-01-02"),
		"days": rows,
	})
}
