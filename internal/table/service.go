package table

import (
	"context"
	"errors"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrTableInactive = errors.New("table is not active")
	ErrTokenRevoked  = errors.New("qr code has been revoked")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Admin: table management
// --------------------------------------------------

func (s *Service) CreateTable(ctx context.Context, number, seats int, name string) (*DiningTable, string, error) {
	if number < 1 {
		return nil, "", errors.New("table number must be positive")
	}
	if seats < 1 {
		return nil, "", errors.New("seats must be positive")
	}

	t := &DiningTable{
		Number: number,
		Name:   name,
		Seats:  seats,
		Active: true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(t.ID, t.TokenVersion)
	if err != nil {
		return nil, "", err
	}
	return t, token, nil
}

func (s *Service) ListTables(ctx context.Context) ([]DiningTable, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateTable(ctx context.Context, t *DiningTable) error {
	if t.ID == "" {
		return errors.New("table id is required")
	}
	return s.repo.Update(ctx, t)
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// RegenerateQR bumps the token version and returns a fresh QR token.
// Every previously printed code for the table stops verifying.
func (s *Service) RegenerateQR(ctx context.Context, id string) (string, error) {
	version, err := s.repo.BumpTokenVersion(ctx, id)
	if err != nil {
		return "", err
	}
	return GenerateToken(id, version)
}

// --------------------------------------------------
// Customer: session verification (QR scan entry)
// --------------------------------------------------

// VerifyToken is the session gate for every customer-facing route.
// It checks signature, table existence, the active flag, and that the
// token was minted with the table's current version.
func (s *Service) VerifyToken(ctx context.Context, token string) (*DiningTable, error) {
	tableID, version, err := ValidateToken(token)
	if err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if !t.Active {
		return nil, ErrTableInactive
	}
	if version != t.TokenVersion {
		return nil, ErrTokenRevoked
	}

	return t, nil
}
