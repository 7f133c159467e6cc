// Package auth orchestrates the login sequence: cached-account restore,
// silent-then-interactive acquisition, and logout. It is the only writer of
// the session store.
package auth

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/client/provider"
	"github.com/dmitrijs2005/tracker/internal/client/session"
	"github.com/dmitrijs2005/tracker/internal/logging"
)

// Bootstrapper drives the session lifecycle. Concurrent Login calls are a
// caller-level ordering hazard: they are not serialized here, and the last
// one to finish wins the session.
type Bootstrapper struct {
	provider provider.Provider
	session  *session.Store
	logger   logging.Logger
}

func NewBootstrapper(p provider.Provider, s *session.Store, l logging.Logger) *Bootstrapper {
	return &Bootstrapper{
		provider: p,
		session:  s,
		logger:   l.With("module", "auth_bootstrapper"),
	}
}

// TryRestoreSession attempts a silent sign-in from the first cached account.
// It reports whether the session ended up authenticated; failures are logged
// and never surfaced, the client simply starts unauthenticated.
func (b *Bootstrapper) TryRestoreSession(ctx context.Context) bool {
	accounts, err := b.provider.CachedAccounts(ctx)
	if err != nil {
		b.logger.Warn(ctx, "Account cache unavailable", "op", "TryRestoreSession")
		return false
	}
	if len(accounts) == 0 {
		return false
	}

	account := accounts[0]
	if err := b.provider.SetActiveAccount(ctx, account); err != nil {
		b.logger.Warn(ctx, "Failed to activate cached account", "username", account.Username)
		return false
	}

	result, err := b.provider.AcquireTokenSilent(ctx, provider.DefaultScopes, account)
	if err != nil {
		b.logger.Info(ctx, "Silent sign-in failed, starting unauthenticated", "username", account.Username)
		return false
	}

	b.session.Set(result.User, result.Roles)
	return true
}

// Login authenticates the user: silent first when an active cached account
// exists, interactive otherwise or as the fallback. On success the session
// is repopulated (idempotent for an already-authenticated session). The
// returned error matches common.ErrInteractiveAuth when both flows failed or
// the user cancelled.
func (b *Bootstrapper) Login(ctx context.Context) error {
	if account := b.activeAccount(ctx); account != nil {
		result, err := b.provider.AcquireTokenSilent(ctx, provider.DefaultScopes, account)
		if err == nil {
			b.session.Set(result.User, result.Roles)
			return nil
		}
		b.logger.Info(ctx, "Silent sign-in failed, falling back to interactive", "username", account.Username)
	}

	result, err := b.provider.AuthenticateInteractively(ctx, provider.DefaultScopes)
	if err != nil {
		b.logger.Warn(ctx, "Interactive sign-in failed", "op", "Login")
		return err
	}

	b.session.Set(result.User, result.Roles)
	return nil
}

// Logout runs the provider's interactive logout and clears the session
// regardless of the outcome, so the client never claims authentication
// after a logout attempt.
func (b *Bootstrapper) Logout(ctx context.Context) {
	if err := b.provider.LogoutInteractively(ctx); err != nil {
		b.logger.Warn(ctx, "Provider logout failed", "op", "Logout")
	}
	b.session.Clear()
}

func (b *Bootstrapper) activeAccount(ctx context.Context) *models.Account {
	accounts, err := b.provider.CachedAccounts(ctx)
	if err != nil {
		return nil
	}
	for _, a := range accounts {
		if a.Active {
			return a
		}
	}
	return nil
}
