//nolint:revive //it is what it is
package rooms

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"strings"
	"time"
	// needed for embedding timezone data.
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"salledispo.app/apps/rooms/internal/feeds"
	"salledispo.app/apps/rooms/internal/jobs"
	"salledispo.app/apps/rooms/internal/repositories"
	"salledispo.app/apps/rooms/internal/services"
	"salledispo.app/internal/auth"
	"salledispo.app/internal/config"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type Rooms struct {
	logger       *slog.Logger
	ctx          context.Context
	ctxCancel    context.CancelFunc
	db           postgres.DB
	Config       config.Config
	store        feeds.Store
	loc          *time.Location
	now          func() time.Time
	Services     *services.Services
	Repositories *repositories.Repositories
	tpl          *template.Template
	jobQueue     *threading.JobQueue
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *Rooms {
	return NewInner(authService, logger, cfg, db, newStore(cfg), time.Now)
}

func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	store feeds.Store,
	now func() time.Time,
) *Rooms {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		panic(err)
	}

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 2, 100)

	//nolint:exhaustruct //other fields are optional
	app := &Rooms{
		logger:   logger,
		Config:   cfg,
		store:    store,
		loc:      loc,
		now:      now,
		tpl:      tpl,
		jobQueue: jobQueue,
	}

	app.setContext()
	app.setDB(db, authService)
	app.setJobs()

	return app
}

func (app *Rooms) setDB(
	db postgres.DB,
	authService auth.Service,
) {
	// make sure previous app is cancelled internally
	app.ctxCancel()
	app.jobQueue.Clear()

	app.setContext()

	spandb := postgres.NewSpanDB(db)
	app.db = spandb

	app.Repositories = repositories.New(app.db)
	app.Services = services.New(
		app.logger,
		app.Config,
		app.jobQueue,
		app.Repositories,
		app.store,
		app.loc,
		app.now,
		authService,
	)
}

func (app *Rooms) setJobs() {
	err := app.jobQueue.AddJob(
		jobs.NewTVStatusJob(app.Services.Rooms, app.Services.WebSocket),
		app.Services.WebSocket.UpdateState,
	)
	if err != nil {
		panic(err)
	}

	app.Services.WebSocket.RegisterTopics(app.jobQueue.FetchJobIDs())
}

func (app *Rooms) setContext() {
	ctx, cancel := context.WithCancel(context.Background())
	app.ctx = ctx
	app.ctxCancel = cancel
}

func (app *Rooms) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *Rooms) GetName() string {
	return "rooms"
}

// newStore picks the feed source from configuration: an HTTP mirror when
// FEEDS_URL is set, the export directory otherwise.
func newStore(cfg config.Config) feeds.Store {
	if cfg.FeedsURL == "" {
		return feeds.NewDirStore(cfg.FeedsDir)
	}

	roomIDs := []string{}
	for _, room := range strings.Split(cfg.FeedsRooms, ",") {
		if room = strings.TrimSpace(room); room != "" {
			roomIDs = append(roomIDs, room)
		}
	}

	store, err := feeds.NewHTTPStore(cfg.FeedsURL, roomIDs)
	if err != nil {
		panic(err)
	}

	return store
}
