// Package accounts stores the locally cached identity-provider accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/tracker/internal/client/models"
)

// Repository describes the account cache operations. The cache holds one row
// per username; at most one row is marked active.
type Repository interface {
	// List returns all cached accounts, active first, oldest first within
	// each group.
	List(ctx context.Context) ([]*models.Account, error)

	// Upsert inserts an account or replaces its refresh token.
	Upsert(ctx context.Context, account *models.Account) error

	// SetActive marks the given username active and deactivates the rest.
	SetActive(ctx context.Context, username string) error

	// GetActive returns the active account, or common.ErrorNotFound.
	GetActive(ctx context.Context) (*models.Account, error)

	// Delete removes an account from the cache. Unknown usernames are not
	// an error.
	Delete(ctx context.Context, username string) error
}
