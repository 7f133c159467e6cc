package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tracker/internal/dbx"
	sc "github.com/dmitrijs2005/tracker/internal/server/config"
	"github.com/dmitrijs2005/tracker/internal/server/models"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for the presign flow so tests can run without S3.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// TaskService owns task reads and mutations plus the task side channels:
// comments, the activity log, and attachment storage (S3 presigned URLs).
//
// Note: the service deliberately does not check roles on status updates.
// Authorization for the completed transition is a client-side concern.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewTaskService(db *sql.DB, rm repomanager.RepositoryManager, cfg *sc.Config) *TaskService {
	return &TaskService{db: db, repomanager: rm, config: cfg}
}

func (s *TaskService) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	return s.repomanager.Tasks(s.db).ListByProject(ctx, projectID)
}

// UpdateStatus persists a status change and records it in the activity log
// in one transaction. Returns the updated task.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID, status, actorID string) (*models.Task, error) {
	task, err := s.repomanager.Tasks(s.db).GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	// Capture the status before the update; a repository may hand back a
	// pointer to the row it is about to mutate.
	oldStatus := task.Status

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Tasks(tx).UpdateStatus(ctx, taskID, status); err != nil {
			return err
		}
		_, err := s.repomanager.Activities(tx).Create(ctx, &models.Activity{
			TaskID:      taskID,
			Type:        models.ActivityStatusChange,
			Description: fmt.Sprintf("Changed status from %s to %s", oldStatus, status),
			UserID:      actorID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repomanager.Tasks(s.db).GetByID(ctx, taskID)
}

// Assign sets the task's assignee and records the assignment.
func (s *TaskService) Assign(ctx context.Context, taskID, userID, actorID string) (*models.Task, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Tasks(tx).UpdateAssignee(ctx, taskID, userID); err != nil {
			return err
		}
		_, err := s.repomanager.Activities(tx).Create(ctx, &models.Activity{
			TaskID:      taskID,
			Type:        models.ActivityAssignment,
			Description: "Assigned the task",
			UserID:      actorID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.repomanager.Tasks(s.db).GetByID(ctx, taskID)
}

// AddComment stores a comment and mirrors it into the activity log.
func (s *TaskService) AddComment(ctx context.Context, taskID, content, actorID string) (*models.Comment, error) {
	comment := &models.Comment{TaskID: taskID, UserID: actorID, Content: content}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		comment, err = s.repomanager.Comments(tx).Create(ctx, comment)
		if err != nil {
			return err
		}
		_, err = s.repomanager.Activities(tx).Create(ctx, &models.Activity{
			TaskID:      taskID,
			Type:        models.ActivityComment,
			Description: "Added a comment",
			UserID:      actorID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *TaskService) ListComments(ctx context.Context, taskID string) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).ListByTask(ctx, taskID)
}

func (s *TaskService) ListActivities(ctx context.Context, taskID string) ([]*models.Activity, error) {
	return s.repomanager.Activities(s.db).ListByTask(ctx, taskID)
}

func (s *TaskService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func attachmentStorageKey(taskID, fileName string) string {
	return fmt.Sprintf("tasks/%s/%s-%s", taskID, uuid.NewString(), fileName)
}

// GetAttachmentUploadURL returns a presigned PUT URL for a task attachment
// and records the upload in the activity log.
func (s *TaskService) GetAttachmentUploadURL(ctx context.Context, taskID, fileName, actorID string) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := attachmentStorageKey(taskID, fileName)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	_, err = s.repomanager.Activities(s.db).Create(ctx, &models.Activity{
		TaskID:      taskID,
		Type:        models.ActivityFileUpload,
		Description: fmt.Sprintf("Uploaded file: %s", fileName),
		UserID:      actorID,
	})
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetAttachmentDownloadURL returns a presigned GET URL for a stored key.
func (s *TaskService) GetAttachmentDownloadURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
