package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/divergentflow/internal/buildinfo"
	"github.com/dmitrijs2005/divergentflow/internal/client/cache"
	"github.com/dmitrijs2005/divergentflow/internal/client/client"
	"github.com/dmitrijs2005/divergentflow/internal/client/config"
	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dmitrijs2005/divergentflow/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/divergentflow/internal/client/services"
	"github.com/dmitrijs2005/divergentflow/internal/filex"
	"github.com/dmitrijs2005/divergentflow/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	version  client.VersionAPI
	captures services.CaptureService
	users    services.UserService
	session  services.SessionService
	prefs    services.PreferencesService

	neuroMode models.NeuroMode
	uiMode    models.UIMode

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the preferences database at c.DBPath and builds the services
// over an HTTP client for c.APIBaseURL.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(c.DBPath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", dbPath, "error", err)
		return nil, err
	}

	var api client.Client = client.NewHTTPClient(c.APIBaseURL, nil, log)

	// the app owns the user id cache; the session service clears it on
	// logout and when a different user logs in
	userCache := cache.NewUserIDCache()
	users := services.NewUserService(api, userCache)

	defaultMode, _ := models.ParseNeuroMode(c.NeuroMode)

	return &App{
		config:    c,
		log:       log,
		db:        db,
		version:   api,
		captures:  services.NewCaptureService(api),
		users:     users,
		session:   services.NewSessionService(users),
		prefs:     services.NewPreferencesService(preferences.NewSQLiteRepository(db), defaultMode),
		neuroMode: defaultMode,
		uiMode:    models.UIModeLight,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		now:       time.Now,
	}, nil
}

// Run prints the start banner, restores saved preferences and runs the REPL
// until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Divergent Flow CLI (type 'help' for commands)")
	if !a.config.IsProduction() {
		fmt.Fprintln(a.out, nonProdBanner(a.config.Environment, a.config.APIBaseURL))
	}

	a.loadPreferences(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the preferences database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func nonProdBanner(env, baseURL string) string {
	return fmt.Sprintf("[%s] %s build %s, API %s", env, buildinfo.Info().Service, buildinfo.Version, baseURL)
}

func (a *App) loadPreferences(ctx context.Context) {
	p, err := a.prefs.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not load preferences", "error", err)
	}
	a.neuroMode = p.NeuroMode
	a.uiMode = p.UIMode
}

func (a *App) isLoggedIn() bool {
	_, err := a.session.Current()
	return err == nil
}

func (a *App) getStatus() string {
	s := string(a.neuroMode)
	if sess, err := a.session.Current(); err == nil {
		s = sess.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
