package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Account, error) {
	query := `select username, refresh_token, active from accounts order by active desc, created_at asc`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	var result []*models.Account
	for rows.Next() {
		item := &models.Account{}
		if err := rows.Scan(&item.Username, &item.RefreshToken, &item.Active); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, account *models.Account) error {
	query := `insert into accounts (username, refresh_token, active) values (?, ?, ?)
		on conflict(username) do update set refresh_token = excluded.refresh_token`
	_, err := r.db.ExecContext(ctx, query, account.Username, account.RefreshToken, account.Active)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) SetActive(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `update accounts set active = 0 where username <> ?`, username); err != nil {
		return fmt.Errorf("failed to deactivate accounts: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `update accounts set active = 1 where username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetActive(ctx context.Context) (*models.Account, error) {
	query := `select username, refresh_token, active from accounts where active = 1`
	row := r.db.QueryRowContext(ctx, query)

	a := &models.Account{}
	if err := row.Scan(&a.Username, &a.RefreshToken, &a.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `delete from accounts where username = ?`, username); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
