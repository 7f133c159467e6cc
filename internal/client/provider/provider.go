// Package provider is the client's identity-provider capability: cached
// accounts, silent token acquisition, and interactive authentication. The
// rest of the client treats it as opaque; only the auth bootstrapper calls
// it.
package provider

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/client/models"
)

// DefaultScopes is the fixed scope set every acquisition asks for.
var DefaultScopes = []string{"User.Read", "profile", "openid", "email"}

// AuthResult is the outcome of a successful acquisition: the account it was
// performed for, the resolved user record, and the role claims extracted
// from the access token.
type AuthResult struct {
	Account *models.Account
	User    *models.User
	Roles   []string
}

// Provider models the identity-provider capability.
//
// Contract:
//   - CachedAccounts returns accounts in provider order (active first).
//   - AcquireTokenSilent fails with common.ErrSilentAuth when the cached
//     credential cannot be exchanged without user interaction.
//   - AuthenticateInteractively fails with common.ErrInteractiveAuth on any
//     failure, including the user cancelling the prompt.
//   - LogoutInteractively revokes the active account's credential; its error
//     may be ignored by the caller.
type Provider interface {
	CachedAccounts(ctx context.Context) ([]*models.Account, error)
	SetActiveAccount(ctx context.Context, account *models.Account) error
	AcquireTokenSilent(ctx context.Context, scopes []string, account *models.Account) (*AuthResult, error)
	AuthenticateInteractively(ctx context.Context, scopes []string) (*AuthResult, error)
	LogoutInteractively(ctx context.Context) error
}

// CredentialPrompter supplies the username and password for an interactive
// flow. Returning an error means the user cancelled.
type CredentialPrompter func(ctx context.Context) (string, []byte, error)
