package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/AlistairHeus/feed-assignment/internal/accounts"
	"github.com/AlistairHeus/feed-assignment/internal/config"
	"github.com/AlistairHeus/feed-assignment/internal/feed"
	"github.com/AlistairHeus/feed-assignment/internal/logging"
	"github.com/AlistairHeus/feed-assignment/internal/session"
	"github.com/AlistairHeus/feed-assignment/internal/storage"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// App wires the client together: configuration, the local store, the
// session coordinator, and the feed service.
type App struct {
	config      *config.Config
	coordinator *session.Coordinator
	feedService *feed.Service
	db          *sql.DB
	log         logging.Logger
	reader      *bufio.Reader
}

// NewApp builds the client from configuration: opens the local store,
// constructs the credential store, the session coordinator (which
// attempts to restore a persisted session), and the feed service.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log, err := newLogger(c)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := accounts.NewStore(db, log)
	coordinator := session.NewCoordinator(ctx, db, store, log,
		session.WithAuthDelay(c.AuthDelay))
	feedService := feed.NewService(db, log)

	// presentation re-render hook: every completed transition is traced
	coordinator.Subscribe(func(snap session.Snapshot) {
		log.Debug(ctx, "state changed",
			"authenticated", snap.Auth.IsAuthenticated,
			"loading", snap.Auth.IsLoading,
			"modal_open", snap.Modal.IsOpen,
			"modal_kind", string(snap.Modal.Kind))
	})

	return &App{
		config:      c,
		coordinator: coordinator,
		feedService: feedService,
		db:          db,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func newLogger(c *config.Config) (logging.Logger, error) {
	if c.LogFormat == "json" {
		zl, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		return logging.NewZapLogger(zl), nil
	}
	return logging.NewTextLogger(os.Stderr), nil
}

// Run provisions the coordinator into the context and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	ctx = session.NewContext(ctx, a.coordinator)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.coordinator.Auth().IsAuthenticated
}

// getStatus renders the prompt suffix: the signed-in email and, when
// the auth modal is open, which dialog it shows.
func (a *App) getStatus() string {
	s := ""
	auth := a.coordinator.Auth()
	if auth.User != nil {
		s = auth.User.Email
	}
	if modal := a.coordinator.Modal(); modal.IsOpen {
		if s != "" {
			s += " "
		}
		s += "[" + string(modal.Kind) + "]"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
