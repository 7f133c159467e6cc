package provider

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tracker/internal/client/client"
	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/cryptox"
	"github.com/dmitrijs2005/tracker/internal/logging"
)

// tokenRotationNotifier is implemented by transports that rotate the token
// pair internally (refresh-on-expired). The provider hooks it to keep the
// account cache's refresh token current.
type tokenRotationNotifier interface {
	OnTokenRefresh(func(accessToken, refreshToken string))
}

// GRPCProvider implements Provider against the identity service, with a
// local SQLite account cache standing in for the identity library's account
// store.
type GRPCProvider struct {
	client client.Client
	db     *sql.DB
	prompt CredentialPrompter
	logger logging.Logger
}

func NewGRPCProvider(c client.Client, db *sql.DB, prompt CredentialPrompter, l logging.Logger) *GRPCProvider {
	p := &GRPCProvider{
		client: c,
		db:     db,
		prompt: prompt,
		logger: l.With("module", "auth_provider"),
	}

	if notifier, ok := c.(tokenRotationNotifier); ok {
		notifier.OnTokenRefresh(p.persistRotatedToken)
	}

	return p
}

func (p *GRPCProvider) getAccountRepo() accounts.Repository {
	return accounts.NewSQLiteRepository(p.db)
}

// persistRotatedToken stores the replacement refresh token for the active
// account after the transport rotated the pair mid-session.
func (p *GRPCProvider) persistRotatedToken(_, refreshToken string) {
	ctx := context.Background()
	repo := p.getAccountRepo()

	account, err := repo.GetActive(ctx)
	if err != nil {
		p.logger.Warn(ctx, "No active account to store rotated token for")
		return
	}

	account.RefreshToken = refreshToken
	if err := repo.Upsert(ctx, account); err != nil {
		p.logger.Error(ctx, "Failed to persist rotated refresh token", "username", account.Username)
	}
}

func (p *GRPCProvider) CachedAccounts(ctx context.Context) ([]*models.Account, error) {
	return p.getAccountRepo().List(ctx)
}

func (p *GRPCProvider) SetActiveAccount(ctx context.Context, account *models.Account) error {
	return p.getAccountRepo().SetActive(ctx, account.Username)
}

// AcquireTokenSilent exchanges the account's cached refresh token for a
// fresh token pair. The scope set is fixed for this provider; it is accepted
// for interface fidelity. Any failure folds into common.ErrSilentAuth.
func (p *GRPCProvider) AcquireTokenSilent(ctx context.Context, scopes []string, account *models.Account) (*AuthResult, error) {
	if account.RefreshToken == "" {
		return nil, fmt.Errorf("%w: account has no cached credential", common.ErrSilentAuth)
	}

	grant, err := p.client.Refresh(ctx, account.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSilentAuth, err)
	}

	account.RefreshToken = grant.RefreshToken
	if err := p.getAccountRepo().Upsert(ctx, account); err != nil {
		p.logger.Error(ctx, "Failed to update account cache", "username", account.Username)
	}

	return &AuthResult{
		Account: account,
		User:    grant.User,
		Roles:   rolesFromToken(grant.AccessToken),
	}, nil
}

// AuthenticateInteractively prompts for credentials and runs the salt /
// verifier login flow. Every failure, including prompt cancellation, folds
// into common.ErrInteractiveAuth.
func (p *GRPCProvider) AuthenticateInteractively(ctx context.Context, scopes []string) (*AuthResult, error) {
	username, password, err := p.prompt(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInteractiveAuth, err)
	}
	defer common.WipeByteArray(password)

	salt, err := p.client.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInteractiveAuth, err)
	}

	key := cryptox.DeriveCredentialKey(password, salt)
	verifier := cryptox.MakeVerifier(key)

	grant, err := p.client.Login(ctx, username, verifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInteractiveAuth, err)
	}

	account := &models.Account{Username: username, RefreshToken: grant.RefreshToken, Active: true}

	repo := p.getAccountRepo()
	if err := repo.Upsert(ctx, account); err != nil {
		p.logger.Error(ctx, "Failed to cache account", "username", username)
	} else if err := repo.SetActive(ctx, username); err != nil {
		p.logger.Error(ctx, "Failed to mark account active", "username", username)
	}

	return &AuthResult{
		Account: account,
		User:    grant.User,
		Roles:   rolesFromToken(grant.AccessToken),
	}, nil
}

// LogoutInteractively revokes the active account's refresh token and drops
// it from the cache.
func (p *GRPCProvider) LogoutInteractively(ctx context.Context) error {
	repo := p.getAccountRepo()

	account, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if err := p.client.Logout(ctx, account.RefreshToken); err != nil {
		return err
	}

	return repo.Delete(ctx, account.Username)
}
