package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/tracker/internal/client/auth"
	"github.com/dmitrijs2005/tracker/internal/client/client"
	"github.com/dmitrijs2005/tracker/internal/client/config"
	"github.com/dmitrijs2005/tracker/internal/client/guard"
	"github.com/dmitrijs2005/tracker/internal/client/projects"
	"github.com/dmitrijs2005/tracker/internal/client/provider"
	"github.com/dmitrijs2005/tracker/internal/client/session"
	"github.com/dmitrijs2005/tracker/internal/client/tasks"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Views the guard knows about. Every protected command navigates to one of
// these before running.
const (
	viewDashboard     = "dashboard"
	viewProjectTasks  = "project-tasks"
	viewNotifications = "notifications"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	client       client.Client
	db           *sql.DB
	session      *session.Store
	bootstrapper *auth.Bootstrapper
	guard        *guard.Guard
	taskService  *tasks.Service
	projService  *projects.Service
	Mode         Mode
	reader       *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := checkConfig(c); err != nil {
		return nil, err
	}

	sl := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := client.InitDatabase(ctx, c.LocalDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)

	prompt := func(ctx context.Context) (string, []byte, error) {
		username, err := getSimpleText(reader, "Enter username", os.Stdout)
		if err != nil {
			return "", nil, err
		}
		password, err := getPassword(os.Stdout)
		if err != nil {
			return "", nil, err
		}
		return username, password, nil
	}

	idp := provider.NewGRPCProvider(apiClient, db, prompt, logger)
	store := session.NewStore()

	ts := tasks.NewService(apiClient, store, logger)
	ts.RegisterHook(tasks.NewPendingReviewNotificationHook(apiClient, logger))

	app := &App{
		config:       c,
		logger:       logger,
		client:       apiClient,
		db:           db,
		session:      store,
		bootstrapper: auth.NewBootstrapper(idp, store, logger),
		guard:        guard.New(store, func() error { return checkConfig(c) }),
		taskService:  ts,
		projService:  projects.NewService(apiClient, store, logger),
		reader:       reader,
	}
	return app, nil
}

func checkConfig(c *config.Config) error {
	if c.ServerEndpointAddr == "" {
		return fmt.Errorf("%w: server endpoint address is not set", common.ErrConfiguration)
	}
	if c.LocalDSN == "" {
		return fmt.Errorf("%w: local database path is not set", common.ErrConfiguration)
	}
	return nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.db.Close()

	log.Println("Welcome to tracker CLI (type 'help' for commands)")

	if a.bootstrapper.TryRestoreSession(ctx) {
		log.Printf("Signed in as %s", displayUsername(a.session.Snapshot()))
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}

// allow runs the guard for a navigation to view. It reports whether the
// command may proceed and explains the refusal to the user when not.
func (a *App) allow(view string) bool {
	switch a.guard.Decide(view) {
	case guard.DecisionAllow:
		return true
	case guard.DecisionConfigError:
		printlnFn("Configuration error: fix the client configuration and restart")
		return false
	default:
		printlnFn("Please log in first (type 'login')")
		return false
	}
}

func (a *App) getStatus() string {
	s := ""
	if state := a.session.Snapshot(); state.Authenticated {
		s = displayUsername(state) + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode != ModeOffline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
