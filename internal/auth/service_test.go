package auth

import (
	"os"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDefaultsToStaffRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	user, err := service.Register("Test User", "staff@example.com", "Password@123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Role != RoleStaff {
		t.Fatalf("expected role %s, got %s", RoleStaff, user.Role)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "x@example.com", "pw", "SUPERUSER"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("A", "dup@example.com", "pw1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("B", "dup@example.com", "pw2", ""); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}

func TestLoginIssuesToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "login@example.com", "Password@123", RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, token, err := service.Login("login@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("token should validate: %v", err)
	}
	if userID != user.ID || email != user.Email || role != RoleAdmin {
		t.Fatalf("claims mismatch: %s %s %s", userID, email, role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "wp@example.com", "right", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := service.Login("wp@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
