package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"digibayt/internal/domain/models"
	applibjwt "digibayt/internal/lib/jwt"
	"digibayt/internal/lib/logger/sl"
	"digibayt/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenNotInStorage = errors.New("token not found in storage")
)

type TokenService struct {
	log        *slog.Logger
	repo       repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		log:        log,
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	const op = "token_service.GenerateTokens"

	accessToken, err := applibjwt.NewToken(user, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := applibjwt.NewToken(user, s.secret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, s.refreshTTL); err != nil {
		s.log.Error("failed to store refresh token", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		UserID:       user.ID.String(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens rotates a refresh token: the presented token must verify
// and still exist in storage, and is consumed before a new pair is issued.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "token_service.RefreshTokens"
	log := s.log.With(slog.String("op", op))

	meta, err := applibjwt.ParseToken(refreshToken, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	exists, err := s.repo.GetRefreshToken(ctx, meta.UserID, refreshToken)
	if err != nil {
		log.Error("refresh token lookup failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		log.Warn("refresh token not in storage", slog.String("user_id", meta.UserID))
		return nil, fmt.Errorf("%s: %w", op, ErrTokenNotInStorage)
	}

	if err := s.repo.DeleteRefreshToken(ctx, meta.UserID, refreshToken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	userID, err := uuid.Parse(meta.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	user := models.User{
		ID:    userID,
		Email: meta.Email,
		Role:  meta.Role,
	}

	return s.GenerateTokens(ctx, user)
}

func (s *TokenService) RevokeToken(ctx context.Context, userID, refreshToken string) error {
	const op = "token_service.RevokeToken"

	if err := s.repo.DeleteRefreshToken(ctx, userID, refreshToken); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RevokeAll drops every refresh token a user holds. Used on account
// deletion and forced logout.
func (s *TokenService) RevokeAll(ctx context.Context, userID string) error {
	const op = "token_service.RevokeAll"

	if err := s.repo.DeleteAllUserTokens(ctx, userID); err != nil {
		s.log.Error("failed to revoke tokens", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
