package table

import "time"

// DiningTable is one physical table. TokenVersion is bumped whenever the
// QR code is regenerated, which invalidates every previously printed code.
type DiningTable struct {
	ID           string    `json:"id"`
	Number       int       `json:"number"`
	Name         string    `json:"name,omitempty"`
	Seats        int       `json:"seats"`
	Active       bool      `json:"active"`
	TokenVersion int       `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
