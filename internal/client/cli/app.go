// Package cli implements the interactive backoffice console: a small REPL
// that binds the session manager, the authorizing transport and the typed
// REST services together.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	"github.com/avendano-dev/backoffice/internal/client/api"
	"github.com/avendano-dev/backoffice/internal/client/config"
	"github.com/avendano-dev/backoffice/internal/client/menu"
	"github.com/avendano-dev/backoffice/internal/client/session"
	"github.com/avendano-dev/backoffice/internal/client/storage"
	"github.com/avendano-dev/backoffice/internal/client/transport"
	"github.com/avendano-dev/backoffice/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	store   storage.Repository
	session *session.Manager
	menu    *menu.Service

	account    *api.AccountService
	users      *api.UserService
	customers  *api.CustomerService
	roles      *api.RoleService
	navigation *api.NavigationService

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := storage.Open(ctx, cfg.StatePath)
	if err != nil {
		return nil, err
	}
	store := storage.NewSQLiteRepository(db)

	// The auth service talks through a plain client; everything else goes
	// through the authorizing pipeline. Both share the same base URL.
	rawClient := &http.Client{Timeout: cfg.RequestTimeout}
	authAPI := api.NewAuthService(api.NewClient(cfg.ServerBaseURL, rawClient, log))

	sess := session.NewManager(authAPI, store, log)

	authedClient := &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: transport.NewAuthTransport(nil, sess, log),
	}
	client := api.NewClient(cfg.ServerBaseURL, authedClient, log)

	accountAPI := api.NewAccountService(client)
	menuSvc := menu.NewService(accountAPI, sess, log)
	sess.Subscribe(func(st session.State) {
		if !st.Authenticated {
			menuSvc.Reset()
		}
	})

	return &App{
		config:     cfg,
		log:        log,
		db:         db,
		store:      store,
		session:    sess,
		menu:       menuSvc,
		account:    accountAPI,
		users:      api.NewUserService(client),
		customers:  api.NewCustomerService(client),
		roles:      api.NewRoleService(client),
		navigation: api.NewNavigationService(client),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if a.session.IsAuthenticated() {
		a.reloadMenu(ctx)
	}

	a.Root(ctx)
}

// reloadMenu refreshes the cached menu tree and permission snapshot. Both
// are best-effort: a failure leaves the caches empty and the REPL usable.
func (a *App) reloadMenu(ctx context.Context) {
	if _, err := a.menu.LoadMenu(ctx); err != nil {
		a.log.Warn(ctx, "failed to load menu", "error", err)
	}
	if _, err := a.menu.LoadPermissions(ctx); err != nil {
		a.log.Warn(ctx, "failed to load permissions", "error", err)
	}
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
