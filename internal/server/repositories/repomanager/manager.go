// Package repomanager wires the per-entity repositories to a database handle
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tracker/internal/dbx"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/activities"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/comments"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/projects"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to the given handle, which
// can be either the root *sql.DB or a transaction from dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Projects(db dbx.DBTX) projects.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Comments(db dbx.DBTX) comments.Repository
	Activities(db dbx.DBTX) activities.Repository
	Notifications(db dbx.DBTX) notifications.Repository
}
