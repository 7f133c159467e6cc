package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tracker/internal/dbx"
	"github.com/dmitrijs2005/tracker/internal/server/config"
	"github.com/dmitrijs2005/tracker/internal/server/models"
	activitiesrepo "github.com/dmitrijs2005/tracker/internal/server/repositories/activities"
	commentsrepo "github.com/dmitrijs2005/tracker/internal/server/repositories/comments"
	notificationsrepo "github.com/dmitrijs2005/tracker/internal/server/repositories/notifications"
	projectsrepo "github.com/dmitrijs2005/tracker/internal/server/repositories/projects"
	refreshtokensrepo "github.com/dmitrijs2005/tracker/internal/server/repositories/refreshtokens"
	tasksrepo "github.com/dmitrijs2005/tracker/internal/server/repositories/tasks"
	usersrepo "github.com/dmitrijs2005/tracker/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeTasksRepo struct {
	byID  map[string]*models.Task
	tasks []*models.Task

	updateStatusErr error
	statusUpdates   []string

	updateAssigneeErr error
	assignments       []string
}

func (f *fakeTasksRepo) CreateBatch(ctx context.Context, tasks []*models.Task) error { return nil }

// GetByID intentionally returns the live pointer, the way an aliasing
// repository might; the service must not depend on it staying unchanged.
func (f *fakeTasksRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, errBoom{}
	}
	return t, nil
}
func (f *fakeTasksRepo) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	return f.tasks, nil
}
func (f *fakeTasksRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.statusUpdates = append(f.statusUpdates, id+":"+status)
	f.byID[id].Status = status
	return nil
}
func (f *fakeTasksRepo) UpdateAssignee(ctx context.Context, id string, userID string) error {
	if f.updateAssigneeErr != nil {
		return f.updateAssigneeErr
	}
	f.assignments = append(f.assignments, id+":"+userID)
	return nil
}

type fakeActivitiesRepo struct {
	createErr error
	created   []*models.Activity
}

func (f *fakeActivitiesRepo) Create(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, a)
	return a, nil
}
func (f *fakeActivitiesRepo) ListByTask(ctx context.Context, taskID string) ([]*models.Activity, error) {
	return f.created, nil
}

type fakeCommentsRepo struct {
	createErr error
	comments  []*models.Comment
}

func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = "c-1"
	f.comments = append(f.comments, c)
	return c, nil
}
func (f *fakeCommentsRepo) ListByTask(ctx context.Context, taskID string) ([]*models.Comment, error) {
	return f.comments, nil
}

type fakeTaskRepoManager struct {
	t *fakeTasksRepo
	a *fakeActivitiesRepo
	c *fakeCommentsRepo
}

func (m *fakeTaskRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeTaskRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return nil }
func (m *fakeTaskRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return nil }
func (m *fakeTaskRepoManager) Projects(db dbx.DBTX) projectsrepo.Repository           { return nil }
func (m *fakeTaskRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository                 { return m.t }
func (m *fakeTaskRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository           { return m.c }
func (m *fakeTaskRepoManager) Activities(db dbx.DBTX) activitiesrepo.Repository       { return m.a }
func (m *fakeTaskRepoManager) Notifications(db dbx.DBTX) notificationsrepo.Repository { return nil }

func newTaskService(t *testing.T, db *sql.DB, rm *fakeTaskRepoManager) *TaskService {
	t.Helper()
	return NewTaskService(db, rm, &config.Config{S3Bucket: "attachments"})
}

func TestUpdateStatus_RecordsActivity(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeTaskRepoManager{
		t: &fakeTasksRepo{byID: map[string]*models.Task{
			"t-1": {ID: "t-1", Status: "in-progress"},
		}},
		a: &fakeActivitiesRepo{},
	}
	s := newTaskService(t, db, rm)

	got, err := s.UpdateStatus(context.Background(), "t-1", "pending-review", "actor")
	require.NoError(t, err)
	assert.Equal(t, "pending-review", got.Status)

	require.Len(t, rm.a.created, 1)
	a := rm.a.created[0]
	assert.Equal(t, models.ActivityStatusChange, a.Type)
	assert.Equal(t, "actor", a.UserID)
	// The description names the status before the update even though the
	// repository mutated its row in place.
	assert.Equal(t, "Changed status from in-progress to pending-review", a.Description)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ActivityFailureRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeTaskRepoManager{
		t: &fakeTasksRepo{byID: map[string]*models.Task{
			"t-1": {ID: "t-1", Status: "in-progress"},
		}},
		a: &fakeActivitiesRepo{createErr: errBoom{}},
	}
	s := newTaskService(t, db, rm)

	_, err := s.UpdateStatus(context.Background(), "t-1", "completed", "actor")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssign_RecordsActivity(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeTaskRepoManager{
		t: &fakeTasksRepo{byID: map[string]*models.Task{
			"t-1": {ID: "t-1", Status: "pending"},
		}},
		a: &fakeActivitiesRepo{},
	}
	s := newTaskService(t, db, rm)

	_, err := s.Assign(context.Background(), "t-1", "u-1", "actor")
	require.NoError(t, err)

	assert.Equal(t, []string{"t-1:u-1"}, rm.t.assignments)
	require.Len(t, rm.a.created, 1)
	assert.Equal(t, models.ActivityAssignment, rm.a.created[0].Type)
}

func TestAddComment_MirrorsIntoActivityLog(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeTaskRepoManager{
		t: &fakeTasksRepo{byID: map[string]*models.Task{}},
		a: &fakeActivitiesRepo{},
		c: &fakeCommentsRepo{},
	}
	s := newTaskService(t, db, rm)

	comment, err := s.AddComment(context.Background(), "t-1", "looks good", "actor")
	require.NoError(t, err)
	assert.Equal(t, "c-1", comment.ID)
	assert.Equal(t, "looks good", comment.Content)

	require.Len(t, rm.a.created, 1)
	assert.Equal(t, models.ActivityComment, rm.a.created[0].Type)
}

func stubPresign(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewClient := newS3ClientFromConfig
	origNewPresign := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewClient
		newS3PresignClient = origNewPresign
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://presigned/put/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://presigned/get/" + *in.Key}, nil
	}
}

func TestGetAttachmentUploadURL_Success(t *testing.T) {
	stubPresign(t)

	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeTaskRepoManager{
		t: &fakeTasksRepo{byID: map[string]*models.Task{}},
		a: &fakeActivitiesRepo{},
	}
	s := newTaskService(t, db, rm)

	key, url, err := s.GetAttachmentUploadURL(context.Background(), "t-1", "report.pdf", "actor")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "tasks/t-1/"), "unexpected key: %q", key)
	assert.True(t, strings.HasSuffix(key, "-report.pdf"), "unexpected key: %q", key)
	assert.Equal(t, "http://presigned/put/"+key, url)

	require.Len(t, rm.a.created, 1)
	assert.Equal(t, models.ActivityFileUpload, rm.a.created[0].Type)
}

func TestGetAttachmentDownloadURL_Success(t *testing.T) {
	stubPresign(t)

	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeTaskRepoManager{t: &fakeTasksRepo{byID: map[string]*models.Task{}}}
	s := newTaskService(t, db, rm)

	url, err := s.GetAttachmentDownloadURL(context.Background(), "tasks/t-1/abc-report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://presigned/get/tasks/t-1/abc-report.pdf", url)
}

func TestGetAttachmentUploadURL_PresignError(t *testing.T) {
	stubPresign(t)
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign failed")
	}

	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeTaskRepoManager{
		t: &fakeTasksRepo{byID: map[string]*models.Task{}},
		a: &fakeActivitiesRepo{},
	}
	s := newTaskService(t, db, rm)

	_, _, err := s.GetAttachmentUploadURL(context.Background(), "t-1", "x", "actor")
	require.Error(t, err)
	assert.Empty(t, rm.a.created, "no activity should be recorded on failure")
}
