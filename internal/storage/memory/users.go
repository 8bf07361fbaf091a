package memory

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type UserMemory struct {
	s *Storage
}

func NewUserMemory(s *Storage) *UserMemory {
	return &UserMemory{s: s}
}

func (r *UserMemory) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return nil, app_errors.ErrUserExists
		}
	}
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	stored := user
	r.s.users[user.ID] = &stored
	return &user, nil
}

func (r *UserMemory) UserByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, app_errors.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *UserMemory) UserByName(_ context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, app_errors.ErrUserNotFound
}

type TokensMemory struct {
	s *Storage
}

func NewTokensMemory(s *Storage) *TokensMemory {
	return &TokensMemory{s: s}
}

func hashToken(token *jwt.Token) string {
	sum := sha256.Sum256([]byte(token.Raw))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (r *TokensMemory) Create(_ context.Context, userID int64, token *jwt.Token) (*models.RefreshToken, error) {
	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	refreshToken := &models.RefreshToken{
		UserID:      userID,
		HashedToken: hashToken(token),
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   expiresAt.Time,
	}
	userTokens, ok := r.s.tokens[userID]
	if !ok {
		userTokens = make(map[string]*models.RefreshToken)
		r.s.tokens[userID] = userTokens
	}
	userTokens[refreshToken.HashedToken] = refreshToken
	cp := *refreshToken
	return &cp, nil
}

func (r *TokensMemory) ByPrimaryKey(_ context.Context, userID int64, token *jwt.Token) (*models.RefreshToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	refreshToken, ok := r.s.tokens[userID][hashToken(token)]
	if !ok {
		return nil, app_errors.ErrTokenNotFound
	}
	cp := *refreshToken
	return &cp, nil
}

func (r *TokensMemory) DeleteUserTokens(_ context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.tokens, userID)
	return nil
}
