package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/internal/storage/memory"
	"LearnHub/pkg/logger"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	store := memory.New()
	manager := NewJWTManager("test-secret", "learnhub", 15*time.Minute, 24*time.Hour)
	return NewAuthService(logger.New("local"), manager, memory.NewUserMemory(store), memory.NewTokensMemory(store))
}

func register(t *testing.T, svc *AuthService, username, password string) *models.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), models.User{
		Username: username,
		Password: password,
		Email:    username + "@example.com",
		Roles:    []string{models.ClientRole},
	})
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}

func TestCreateUserPasswordBounds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, password := range []string{"short", "seventeen-chars!!"} {
		_, err := svc.CreateUser(ctx, models.User{Username: "u", Password: password})
		if !errors.Is(err, app_errors.ErrIncorrectPassword) {
			t.Errorf("password %q: expected ErrIncorrectPassword, got %v", password, err)
		}
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := newTestService(t)

	user := register(t, svc, "alice", "secret123")
	if user.Password == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if !checkPasswordHash("secret123", user.Password) {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestCreateDuplicateUser(t *testing.T) {
	svc := newTestService(t)
	register(t, svc, "alice", "secret123")

	_, err := svc.CreateUser(context.Background(), models.User{Username: "alice", Password: "secret456"})
	if !errors.Is(err, app_errors.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	user := register(t, svc, "alice", "secret123")

	access, refresh, err := svc.LoginUser(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}

	userID, roles, err := svc.AccessClaims(ctx, access)
	if err != nil {
		t.Fatalf("access claims: %v", err)
	}
	if userID != user.ID {
		t.Errorf("expected user id %d in claims, got %d", user.ID, userID)
	}
	if len(roles) != 1 || roles[0] != models.ClientRole {
		t.Errorf("expected client role, got %v", roles)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	register(t, svc, "alice", "secret123")

	_, _, err := svc.LoginUser(context.Background(), "alice", "wrong1234")
	if !errors.Is(err, app_errors.ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.LoginUser(context.Background(), "nobody", "secret123")
	if !errors.Is(err, app_errors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRefreshTokensRotates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	register(t, svc, "alice", "secret123")

	_, refresh, err := svc.LoginUser(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	pair, err := svc.RefreshTokens(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if pair.AccessToken.Raw == "" || pair.RefreshToken.Raw == "" {
		t.Fatal("expected new token pair")
	}

	// The old refresh token was rotated out and must not work again.
	if _, err := svc.RefreshTokens(ctx, refresh); !errors.Is(err, app_errors.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound for rotated token, got %v", err)
	}

	if _, err := svc.RefreshTokens(ctx, pair.RefreshToken.Raw); err != nil {
		t.Fatalf("refresh with rotated token: %v", err)
	}
}

func TestAccessTokenTypeChecks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	register(t, svc, "alice", "secret123")

	access, refresh, err := svc.LoginUser(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	accessToken, err := svc.ParseToken(ctx, access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if !svc.IsAccessToken(ctx, accessToken) {
		t.Error("access token not recognized as access")
	}

	refreshToken, err := svc.ParseToken(ctx, refresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if svc.IsAccessToken(ctx, refreshToken) {
		t.Error("refresh token recognized as access")
	}

	if _, _, err := svc.AccessClaims(ctx, refresh); err == nil {
		t.Error("expected AccessClaims to reject a refresh token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	store := memory.New()
	manager := NewJWTManager("test-secret", "learnhub", -time.Minute, -time.Minute)
	svc := NewAuthService(logger.New("local"), manager, memory.NewUserMemory(store), memory.NewTokensMemory(store))
	register(t, svc, "alice", "secret123")

	_, refresh, err := svc.LoginUser(context.Background(), "alice", "secret123")
	if err == nil {
		_, err = svc.RefreshTokens(context.Background(), refresh)
	}
	if !errors.Is(err, app_errors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
