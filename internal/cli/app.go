// Package cli implements the interactive casefile REPL: sign in, inspect
// the session, and manage case records.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/nightshift/casefile/internal/api"
	"github.com/nightshift/casefile/internal/config"
	"github.com/nightshift/casefile/internal/logging"
	"github.com/nightshift/casefile/internal/models"
	"github.com/nightshift/casefile/internal/session"
	"github.com/nightshift/casefile/internal/storage"
)

// App wires the REPL together: session store, case client, input/output.
type App struct {
	config *config.Config
	store  *session.Store
	auth   api.AuthAPI
	cases  api.CaseAPI
	log    logging.Logger

	// caseList is the in-memory cache of the last listed cases; a
	// successful create prepends to it without a follow-up fetch.
	caseList []models.Case

	// pending holds a protected command line deferred by the guard until
	// the next successful login.
	pending string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local session database and constructs the application.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.StorageDSN)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.BaseURL, cfg.RequestTimeout, log)
	repo := storage.NewSQLiteRepository(db)
	auth := api.NewAuthClient(client)
	store := session.NewStore(auth, repo, log)

	return &App{
		config: cfg,
		store:  store,
		auth:   auth,
		cases:  api.NewCaseClient(client),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// newTestApp builds an App with injected collaborators, for tests.
func newTestApp(store *session.Store, auth api.AuthAPI, cases api.CaseAPI, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:  store,
		auth:   auth,
		cases:  cases,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run restores the stored session (if any) and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.Restore(ctx); err != nil {
		return err
	}
	if u := a.store.User(); u != nil {
		a.log.Info(ctx, "session restored", "user", u.Username)
	}
	a.Root(ctx)
	return nil
}
