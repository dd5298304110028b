package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	user, err := service.Register("Asha", "asha@example.com", "plain-secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if user.Password == "plain-secret" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plain-secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != RoleStudent {
		t.Fatalf("expected role %q, got %q", RoleStudent, user.Role)
	}
	if user.ID == "" {
		t.Fatal("expected generated user id")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Asha", "asha@example.com", "secret"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := service.Register("Other", "asha@example.com", "secret2")
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("", "a@example.com", "secret"); err != ErrMissingFields {
		t.Fatalf("missing name: expected ErrMissingFields, got %v", err)
	}
	if _, err := service.Register("Asha", "", "secret"); err != ErrMissingFields {
		t.Fatalf("missing email: expected ErrMissingFields, got %v", err)
	}
	if _, err := service.Register("Asha", "a@example.com", ""); err != ErrMissingFields {
		t.Fatalf("missing password: expected ErrMissingFields, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	registered, err := service.Register("Asha", "asha@example.com", "secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := service.Login("asha@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %q, got %q", registered.ID, user.ID)
	}

	if _, err := service.Login("asha@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "secret"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-1", "asha@example.com", RoleStudent)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token failed: %v", err)
	}
	if userID != "user-1" || email != "asha@example.com" || role != RoleStudent {
		t.Fatalf("unexpected claims: %q %q %q", userID, email, role)
	}

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := generateTokenWithTTL("user-1", "asha@example.com", RoleStudent, -time.Minute)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if _, _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestValidateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("user-1", "asha@example.com", RoleStudent); err != ErrNoSecret {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "asha@example.com", RoleStudent); err == nil {
		t.Fatal("expected error for missing user id")
	}
}
