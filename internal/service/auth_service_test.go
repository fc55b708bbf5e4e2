package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wasimadildev/card-to-text-backend/internal/models"
)

func TestRegisterForcesUserRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "secret")
	ctx := context.Background()

	u, err := svc.Register(ctx, " Jane@Example.com ", "Jane", "password1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != models.RoleUser {
		t.Errorf("Role = %q, want user", u.Role)
	}
	if u.Email != "jane@example.com" {
		t.Errorf("Email = %q, want normalized", u.Email)
	}

	if _, err := svc.Register(ctx, "x@example.com", "X", "short"); err == nil {
		t.Error("expected short password to be rejected")
	}
	if _, err := svc.Register(ctx, "", "X", "password1"); err == nil {
		t.Error("expected empty email to be rejected")
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, "secret")
	ctx := context.Background()

	u, err := svc.Register(ctx, "jane@example.com", "Jane", "password1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tok, got, err := svc.Login(ctx, "jane@example.com", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok == "" || got.ID != u.ID {
		t.Errorf("token=%q user=%+v", tok, got)
	}

	if _, _, err := svc.Login(ctx, "jane@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "password1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v", err)
	}

	// Deactivated accounts cannot log in.
	if _, err := users.SetActive(ctx, u.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if _, _, err := svc.Login(ctx, "jane@example.com", "password1"); !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("disabled account: err = %v", err)
	}
}
