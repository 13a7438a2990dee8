package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/jaykumar/jobportal-cli/internal/client/config"
	"github.com/jaykumar/jobportal-cli/internal/client/nav"
	"github.com/jaykumar/jobportal-cli/internal/client/portal"
	"github.com/jaykumar/jobportal-cli/internal/client/repositories/creds"
	"github.com/jaykumar/jobportal-cli/internal/client/services"
	"github.com/jaykumar/jobportal-cli/internal/client/storage"
	"github.com/jaykumar/jobportal-cli/internal/client/stores"
	"github.com/jaykumar/jobportal-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the REPL pages to the application services and stores.
type App struct {
	config         *config.Config
	authService    services.AuthService
	companyService services.CompanyService
	session        *stores.SessionStore
	companyStore   *stores.CompanyStore
	db             *sql.DB
	reader         *bufio.Reader
	log            logging.Logger
}

// NewApp wires the local database, the API client, the stores and the
// services for the CLI.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := portal.NewHTTPClient(c.UserAPIURL, c.CompanyAPIURL, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	credRepo := creds.NewSQLiteRepository(db)
	session := stores.NewSessionStore()
	companyStore := stores.NewCompanyStore()

	as := services.NewAuthService(apiClient, session, credRepo, log)
	cs := services.NewCompanyService(apiClient, credRepo, companyStore, log)

	return &App{
		config:         c,
		authService:    as,
		companyService: cs,
		session:        session,
		companyStore:   companyStore,
		db:             db,
		reader:         bufio.NewReader(os.Stdin),
		log:            log,
	}, nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Root restores the session and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	// Session state is in-memory only: re-derive it from the persisted
	// cookie session before the first render. Failure just means the
	// visitor starts out anonymous.
	_ = a.authService.RestoreSession(ctx)

	scanner := newStdinScanner()
	a.Home(ctx)
	runREPL(ctx, a, a.status, scanner)
}

// menu derives the navigation menu from the current session. Evaluated on
// every render; never cached.
func (a *App) menu() nav.Menu {
	return nav.MenuFor(a.session.User())
}

// status builds the prompt fragment showing who is signed in.
func (a *App) status() string {
	u := a.session.User()
	if u == nil {
		return "guest"
	}
	return u.FullName + " (" + string(u.Role) + ")"
}
