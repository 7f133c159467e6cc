// Package services contains the application services behind the gRPC
// endpoint: identity (token issuance), projects, tasks, and notifications.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/server/auth"
	"github.com/dmitrijs2005/tracker/internal/server/config"
	"github.com/dmitrijs2005/tracker/internal/server/models"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/repomanager"
)

// TokenPair is the result of a successful credential or refresh grant.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IdentityService implements the identity-provider side of the system:
// user provisioning, credential login, refresh-token (silent) grants, and
// logout. Roles are attached to users at provisioning time and travel as
// JWT claims in the access token.
type IdentityService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewIdentityService(db *sql.DB, rm repomanager.RepositoryManager, cfg *config.Config) *IdentityService {
	return &IdentityService{
		db:                           db,
		repomanager:                  rm,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register provisions a user with the given credential material and roles.
func (s *IdentityService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// GetSalt returns the stored salt for username. To avoid disclosing which
// usernames exist, an unknown username yields a random salt.
func (s *IdentityService) GetSalt(ctx context.Context, username string) ([]byte, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.GenerateRandByteArray(32), nil
		}
		return nil, common.ErrorInternal
	}
	return user.Salt, nil
}

func (s *IdentityService) checkVerifier(verifier, candidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}

func (s *IdentityService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Roles, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repomanager.RefreshTokens(s.db).Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Login performs the interactive credential grant.
func (s *IdentityService) Login(ctx context.Context, username string, verifierCandidate []byte) (*TokenPair, *models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if !s.checkVerifier(user.Verifier, verifierCandidate) {
		return nil, nil, common.ErrorUnauthorized
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

// Refresh performs the silent grant: it exchanges a live refresh token for a
// fresh token pair and revokes the old one (single-use rotation).
func (s *IdentityService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, *models.User, error) {
	tokenRepo := s.repomanager.RefreshTokens(s.db)

	stored, err := tokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if time.Now().After(stored.Expires) {
		_ = tokenRepo.Delete(ctx, refreshToken)
		return nil, nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	if err := tokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, nil, common.ErrorInternal
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

// ListUsers returns all provisioned users, for assignee and manager pickers.
func (s *IdentityService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// Logout revokes a refresh token. Revoking an unknown token succeeds.
func (s *IdentityService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return common.ErrorInternal
	}
	return nil
}
