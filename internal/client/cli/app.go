package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"healthchat/internal/client/api"
	"healthchat/internal/client/config"
	"healthchat/internal/client/credentials"
	"healthchat/internal/client/migrations"
	"healthchat/internal/client/session"
	"healthchat/internal/logging"
)

// App wires the client components together and drives the REPL. It owns
// the single session.Controller instance and the chat client; both share
// one credential store, which is the only source of truth for the token.
type App struct {
	config  *config.Config
	session *session.Controller
	chat    api.ChatAPI
	log     logging.Logger
	reader  *bufio.Reader

	// activeSession is the chat session follow-up messages go to.
	// Nil until the first message or an explicit new/history command.
	activeSession *int64
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	log := logging.NewZapLogger(zl)

	db, err := openDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize credential database", "error", err)
		return nil, err
	}

	backend, err := newBackend(db, cfg)
	if err != nil {
		log.Error(ctx, "failed to initialize credential backend", "error", err)
		return nil, err
	}

	store := credentials.NewStore(backend, log)
	client := api.NewHTTPClient(cfg.APIBaseURL, store)
	controller := session.NewController(client, store, log)

	return &App{
		config:  cfg,
		session: controller,
		chat:    client,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, err
	}
	return db, nil
}

// newBackend selects the storage backend: sealed by default, plain when
// the host environment has no safe place for the secret file.
func newBackend(db *sql.DB, cfg *config.Config) (credentials.Backend, error) {
	backend := credentials.NewSQLiteBackend(db)
	if cfg.PlainStorage {
		return backend, nil
	}
	key, err := credentials.LoadOrCreateSealingKey(cfg.SecretPath)
	if err != nil {
		return nil, err
	}
	return credentials.NewSealedBackend(backend, key), nil
}

// Run restores the persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	st := a.session.State()
	return !st.Loading && st.Authenticated
}

func (a *App) status() string {
	st := a.session.State()
	switch {
	case st.Loading:
		return "..."
	case st.Authenticated:
		return st.User.Email
	default:
		return "signed out"
	}
}
