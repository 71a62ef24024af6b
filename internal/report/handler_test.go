package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type stubReader struct {
	from time.Time
	to   time.Time
	rows []DailyRow
}

func (s *stubReader) Daily(ctx context.Context, from, to time.Time) ([]DailyRow, error) {
	s.from = from
	s.to = to
	return s.rows, nil
}

func dailyRouter(reader *stubReader) *gin.Engine {
	router := gin.New()
	router.GET("/admin/reports/daily", NewHandler(reader).Daily)
	return router
}

func TestDailyExplicitWindow(t *testing.T) {
	reader := &stubReader{rows: []DailyRow{{
		Day:        time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		OrderCount: 3,
		GrossTotal: decimal.NewFromInt(450000),
	}}}
	router := dailyRouter(reader)

	req := httptest.NewRequest("GET", "/admin/reports/daily?from=2026-08-01&to=2026-08-07", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if !reader.from.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from: %s", reader.from)
	}
	// to is inclusive in the query string, the repository gets the
	// exclusive upper bound
	if !reader.to.Equal(time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected to: %s", reader.to)
	}
}

func TestDailyDefaultsToLastSevenDays(t *testing.T) {
	reader := &stubReader{}
	router := dailyRouter(reader)

	req := httptest.NewRequest("GET", "/admin/reports/daily", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if got := reader.to.Sub(reader.from); got != 7*24*time.Hour {
		t.Fatalf("expected a 7 day window, got %s", got)
	}
	// upper bound covers today: tomorrow's midnight, exclusive
	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	if !reader.to.Equal(tomorrow) {
		t.Fatalf("expected to = %s, got %s", tomorrow, reader.to)
	}
}

func TestDailyRejectsMalformedDate(t *testing.T) {
	router := dailyRouter(&stubReader{})

	req := httptest.NewRequest("GET", "/admin/reports/daily?from=01-08-2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestDailyRejectsInvertedWindow(t *testing.T) {
	router := dailyRouter(&stubReader{})

	req := httptest.NewRequest("GET", "/admin/reports/daily?from=2026-08-07&to=2026-08-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
