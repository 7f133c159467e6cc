// Package server initializes and runs the tracker server application.
// It opens the database, applies migrations, wires the services together
// and starts the gRPC endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/tracker/internal/logging"
	"github.com/dmitrijs2005/tracker/internal/server/config"
	gs "github.com/dmitrijs2005/tracker/internal/server/grpc"
	"github.com/dmitrijs2005/tracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tracker/internal/server/services"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	db                  *sql.DB
	identityService     *services.IdentityService
	projectService      *services.ProjectService
	taskService         *services.TaskService
	notificationService *services.NotificationService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	is := services.NewIdentityService(db, rm, cfg)
	ps := services.NewProjectService(db, rm)
	ts := services.NewTaskService(db, rm, cfg)
	ns := services.NewNotificationService(db, rm)

	return &App{
		config:              cfg,
		logger:              logger,
		db:                  db,
		identityService:     is,
		projectService:      ps,
		taskService:         ts,
		notificationService: ns,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.identityService, app.projectService, app.taskService, app.notificationService,
		app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
