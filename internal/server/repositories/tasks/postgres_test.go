package tasks

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

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

var taskColumns = []string{
	"t.id", "t.project_id", "t.name", "t.description", "t.status",
	"t.start_date", "t.end_date", "t.is_recurring", "t.recurring_interval",
	"u.id", "u.username", "u.name", "u.email",
}

func TestGetByID_WithAssignee(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	rows := sqlmock.NewRows(taskColumns).
		AddRow("t-1", "p-1", "Kickoff", "desc", "pending",
			start, end, false, nil,
			"u-1", "alice", "Alice", "alice@corp.test")
	mock.ExpectQuery(`(?s)SELECT\s+t\.id,.*FROM\s+tasks\s+t\s+LEFT\s+JOIN\s+users\s+u.*WHERE\s+t\.id\s*=\s*\$1`).
		WithArgs("t-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.AssignedTo == nil || got.AssignedTo.Username != "alice" {
		t.Fatalf("unexpected assignee: %+v", got.AssignedTo)
	}
	if got.AssignedToID != "u-1" {
		t.Fatalf("unexpected assignee id: %q", got.AssignedToID)
	}
}

func TestGetByID_Unassigned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(taskColumns).
		AddRow("t-1", "p-1", "Kickoff", "desc", "pending",
			start, start, true, "weekly",
			nil, nil, nil, nil)
	mock.ExpectQuery(`(?s)WHERE\s+t\.id\s*=\s*\$1`).
		WithArgs("t-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.AssignedTo != nil {
		t.Fatalf("expected nil assignee, got %+v", got.AssignedTo)
	}
	if !got.IsRecurring || got.RecurringInterval != "weekly" {
		t.Fatalf("unexpected recurrence: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WHERE\s+t\.id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByProject_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(taskColumns).
		AddRow("t-1", "p-1", "Kickoff", "", "pending", start, start, false, nil, nil, nil, nil, nil).
		AddRow("t-2", "p-1", "Design", "", "in-progress", start, start, false, nil, "u-1", "alice", "Alice", "a@b.c")
	mock.ExpectQuery(`(?s)WHERE\s+t\.project_id\s*=\s*\$1\s+ORDER\s+BY\s+t\.start_date`).
		WithArgs("p-1").
		WillReturnRows(rows)

	got, err := repo.ListByProject(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("ListByProject error: %v", err)
	}
	if len(got) != 2 || got[1].AssignedTo == nil {
		t.Fatalf("unexpected tasks: %+v", got)
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+tasks\s+SET\s+status\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).
		WithArgs("t-1", "completed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), "t-1", "completed"); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+tasks\s+SET\s+status\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).
		WithArgs("ghost", "completed").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "ghost", "completed")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateAssignee_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+tasks\s+SET\s+assigned_to\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WillReturnError(errors.New("db err"))

	err := repo.UpdateAssignee(context.Background(), "t-1", "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCreateBatch_InsertsEveryTask(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+tasks`
	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 1))

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	tasks := []*models.Task{
		{ID: "t-1", ProjectID: "p-1", Name: "Kickoff", Status: "pending", StartDate: start, EndDate: start},
		{ID: "t-2", ProjectID: "p-1", Name: "Standup", Status: "pending", StartDate: start, EndDate: start, IsRecurring: true, RecurringInterval: "daily"},
	}
	if err := repo.CreateBatch(context.Background(), tasks); err != nil {
		t.Fatalf("CreateBatch error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
