package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const createQuery = `(?s)^\s*INSERT\s+INTO\s+users\s*\(username,\s*name,\s*email,\s*salt,\s*verifier,\s*roles\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("42")
	mock.ExpectQuery(createQuery).
		WithArgs("alice", "Alice", "alice@corp.test", []byte("salt"), []byte("verifier"), "Operations_Manager").
		WillReturnRows(rows)

	u := &models.User{
		Username: "alice",
		Name:     "Alice",
		Email:    "alice@corp.test",
		Salt:     []byte("salt"),
		Verifier: []byte("verifier"),
		Roles:    []string{"Operations_Manager"},
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(createQuery).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

const getByUsernameQuery = `(?s)^\s*SELECT\s+id,\s*username,\s*name,\s*email,\s*salt,\s*verifier,\s*roles\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "name", "email", "salt", "verifier", "roles"}).
		AddRow("u-1", "alice", "Alice", "alice@corp.test", []byte("salt"), []byte("ver"), "Operations_Manager,Project_Workflow_Project_Managers")
	mock.ExpectQuery(getByUsernameQuery).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != "u-1" || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if len(got.Roles) != 2 || got.Roles[0] != "Operations_Manager" {
		t.Fatalf("unexpected roles: %v", got.Roles)
	}
}

func TestGetByUsername_EmptyRoles(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "name", "email", "salt", "verifier", "roles"}).
		AddRow("u-1", "alice", "Alice", "alice@corp.test", []byte("salt"), []byte("ver"), "")
	mock.ExpectQuery(getByUsernameQuery).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.Roles != nil {
		t.Fatalf("expected nil roles, got %v", got.Roles)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getByUsernameQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*username,\s*name,\s*email,\s*salt,\s*verifier,\s*roles\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	rows := sqlmock.NewRows([]string{"id", "username", "name", "email", "salt", "verifier", "roles"}).
		AddRow("u-1", "alice", "Alice", "alice@corp.test", []byte("salt"), []byte("ver"), "")
	mock.ExpectQuery(q).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil || got.Username != "alice" {
		t.Fatalf("GetByID: got %+v, err=%v", got, err)
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*username,\s*name,\s*email,\s*roles\s+FROM\s+users\s+ORDER\s+BY\s+name\s*$`
	rows := sqlmock.NewRows([]string{"id", "username", "name", "email", "roles"}).
		AddRow("u-1", "alice", "Alice", "alice@corp.test", "").
		AddRow("u-2", "bob", "Bob", "bob@corp.test", "Operations_Manager")
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[1].Roles[0] != "Operations_Manager" {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*username,\s*name,\s*email,\s*roles\s+FROM\s+users\s+ORDER\s+BY\s+name\s*$`
	mock.ExpectQuery(q).WillReturnError(errors.New("db err"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
