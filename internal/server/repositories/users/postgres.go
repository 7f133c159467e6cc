package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/dbx"
	"github.com/dmitrijs2005/tracker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Roles are stored as a comma-separated list; an empty column means an empty
// role set.
func encodeRoles(roles []string) string {
	return strings.Join(roles, ",")
}

func decodeRoles(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, name, email, salt, verifier, roles)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Name, user.Email, user.Salt, user.Verifier, encodeRoles(user.Roles)).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, name, email, salt, verifier, roles
		FROM users
		WHERE username = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, name, email, salt, verifier, roles
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var roles string
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.Email, &user.Salt, &user.Verifier, &roles)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.Roles = decodeRoles(roles)
	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, username, name, email, roles
		FROM users
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		var roles string
		if err := rows.Scan(&user.ID, &user.Username, &user.Name, &user.Email, &roles); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		user.Roles = decodeRoles(roles)
		users = append(users, user)
	}
	return users, rows.Err()
}
