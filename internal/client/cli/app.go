package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/slicedsoap/wolfnotes/internal/client/cache"
	"github.com/slicedsoap/wolfnotes/internal/client/config"
	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/client/services"
	clientsync "github.com/slicedsoap/wolfnotes/internal/client/sync"
	"github.com/slicedsoap/wolfnotes/internal/client/swproxy"
	"github.com/slicedsoap/wolfnotes/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the cache, gateway, services, reconciler and asset proxy behind
// an interactive REPL.
type App struct {
	config *config.Config
	log    logging.Logger

	cache      *cache.Cache
	auth       *services.AuthService
	notes      *services.NotesService
	classes    *services.ClassesService
	students   *services.StudentsService
	reconciler *clientsync.Reconciler
	proxy      *swproxy.Proxy

	user   *models.User
	online atomic.Bool

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	var log logging.Logger
	if c.LogFile != "" {
		log = logging.NewFileLogger(c.LogFile, slog.LevelInfo)
	} else {
		log = logging.NewSlogLogger(slog.Default())
	}

	store, err := cache.Open(ctx, c.CacheDSN)
	if err != nil {
		log.Error(ctx, "cannot open local cache", "dsn", c.CacheDSN, "err", err)
		return nil, err
	}

	apiClient, err := gateway.NewHTTPClient(c.ServerURL)
	if err != nil {
		return nil, err
	}

	fetcher, err := swproxy.NewHTTPFetcher(c.ServerURL)
	if err != nil {
		return nil, err
	}

	app := &App{
		config: c,
		log:    log,
		cache:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	app.online.Store(true)

	app.auth = services.NewAuthService(apiClient, store, log)
	app.notes = services.NewNotesService(apiClient, store, app.online.Load, log)
	app.classes = services.NewClassesService(apiClient, store, log)
	app.students = services.NewStudentsService(apiClient, log)
	app.reconciler = clientsync.New(apiClient, store.Outbox, app.refreshClasses, log)
	app.proxy = swproxy.New(c.AssetVersion, store.Assets, fetcher, nil, log)

	return app, nil
}

// Run installs the asset proxy, starts the connectivity watcher and blocks
// in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.cache.Close()

	a.proxy.Start(ctx)
	go func() {
		if err := a.proxy.Install(ctx); err != nil {
			a.log.Warn(ctx, "asset install interrupted", "err", err)
			return
		}
		if err := a.proxy.Activate(ctx); err != nil {
			a.log.Warn(ctx, "asset activation failed", "err", err)
		}
	}()

	go a.drainAtStartup(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

// drainAtStartup probes the server once and, if reachable, runs a reconciler
// pass immediately. Entries queued in a previous session would otherwise wait
// for an offline→online transition that never happens when the app comes up
// already connected.
func (a *App) drainAtStartup(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.auth.Ping(probeCtx)
	cancel()

	if err != nil {
		a.setOnline(ctx, false)
		return
	}
	a.reconciler.Run(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) mode() Mode {
	if a.online.Load() {
		return ModeOnline
	}
	return ModeOffline
}

// setOnline records a connectivity change. The offline→online transition
// kicks off a reconciler pass to drain uploads queued while disconnected.
func (a *App) setOnline(ctx context.Context, online bool) {
	if a.online.Swap(online) == online {
		return
	}
	a.log.Info(ctx, "connectivity changed", "mode", string(a.mode()))
	if online {
		go a.reconciler.Run(ctx)
	}
}

// StartOnlineStatusWatcher probes the server every interval and flips the
// online flag on transitions. It blocks until ctx is canceled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(probeCtx)
			cancel()

			a.setOnline(ctx, err == nil)

		case <-ctx.Done():
			return
		}
	}
}

// refreshClasses reloads the note lists of classes whose queued uploads just
// reached the server, so the cache reflects the server-assigned records.
func (a *App) refreshClasses(classIDs []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, id := range classIDs {
		if _, err := a.notes.ByClass(ctx, id); err != nil {
			a.log.Warn(ctx, "post-sync refresh failed", "class_id", id, "err", err)
		}
	}
}
