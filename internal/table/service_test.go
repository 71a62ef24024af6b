package table

import (
	"context"
	"os"
	"testing"
)

func setupSecret(t *testing.T) {
	t.Helper()
	os.Setenv("QR_TOKEN_SECRET", "test-secret-key-12345")
}

func TestCreateTableIssuesVerifiableToken(t *testing.T) {
	setupSecret(t)
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	created, token, err := service.CreateTable(ctx, 5, 4, "Window")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verified, err := service.VerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("token should verify: %v", err)
	}
	if verified.ID != created.ID {
		t.Fatalf("expected table %s, got %s", created.ID, verified.ID)
	}
}

func TestRegenerateQRInvalidatesOldToken(t *testing.T) {
	setupSecret(t)
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	created, oldToken, err := service.CreateTable(ctx, 1, 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newToken, err := service.RegenerateQR(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.VerifyToken(ctx, oldToken); err != ErrTokenRevoked {
		t.Fatalf("old token must be revoked, got %v", err)
	}
	if _, err := service.VerifyToken(ctx, newToken); err != nil {
		t.Fatalf("new token should verify: %v", err)
	}
}

func TestInactiveTableRejected(t *testing.T) {
	setupSecret(t)
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	created, token, err := service.CreateTable(ctx, 2, 4, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.SetActive(ctx, created.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.VerifyToken(ctx, token); err != ErrTableInactive {
		t.Fatalf("expected ErrTableInactive, got %v", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	setupSecret(t)
	service := NewService(NewInMemoryRepository())

	if _, err := service.VerifyToken(context.Background(), "not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestCreateTableValidation(t *testing.T) {
	setupSecret(t)
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	if _, _, err := service.CreateTable(ctx, 0, 4, ""); err == nil {
		t.Fatal("expected error for non-positive table number")
	}
	if _, _, err := service.CreateTable(ctx, 1, 0, ""); err == nil {
		t.Fatal("expected error for non-positive seats")
	}
}
