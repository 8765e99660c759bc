// Package folio is a personal blog and portfolio server built with Go, Echo
// and templ. Markdown posts are indexed into SQLite, listed newest-first,
// and rendered next to a hand-curated project list.
//
// Callers provide the templ components via ViewFuncs; folio owns routing,
// middleware, the content index and the per-visitor theme preference.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

// ViewFuncs holds the templ components folio calls when rendering pages.
type ViewFuncs struct {
	Home           func(p Page, latest, popular []PostItem) templ.Component
	Blog           func(p Page, posts []PostItem, activeTag string, tags []string) templ.Component
	Projects       func(p Page, projects []ProjectItem) templ.Component
	Post           func(p Page, v PostView) templ.Component
	AdminLogin     func(p Page, showError bool) templ.Component
	AdminDashboard func(p Page, entries []Post, message string) templ.Component
	NotFound       func(p Page) templ.Component
	ServerError    func(p Page) templ.Component
}

// App wires together the store, cache, indexer, handlers and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Store    *Store
	Cache    *PostCache
	Indexer  *Indexer
	Views    ViewFuncs
	Projects []Project
	Logger   echo.Logger

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	initialized  bool
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	cfg.Normalize()

	logger := log.New("folio")
	logger.SetLevel(log.INFO)

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Views:    views,
		Projects: DefaultProjects,
		Logger:   logger,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	a.Echo.Logger = a.Logger

	return a
}

// Init opens the store, builds the initial index and registers middleware
// and routes. Start calls it when it has not run yet.
func (a *App) Init(ctx context.Context) error {
	if a.initialized {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.Indexer = NewIndexer(a.Config, a.Store, a.Logger)

	stats, err := a.Indexer.Run(ctx)
	if err != nil {
		return err
	}
	a.Logger.Infof("indexed %d posts, %d pages, %d thumbnails", stats.Posts, stats.Pages, stats.Thumbnails)

	if a.Config.AdminPassword != "" {
		a.loginLimiter = NewLoginLimiter(5, time.Minute)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start serves until ctx is cancelled, then shuts the server down. With
// Config.Watch set, content changes are re-indexed while serving.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})
	if a.Config.Watch {
		g.Go(func() error {
			return a.Indexer.WatchContent(ctx, func(s IndexStats) {
				a.Cache.Invalidate()
				a.Logger.Infof("re-indexed %d posts, %d pages", s.Posts, s.Pages)
			})
		})
	}
	return g.Wait()
}

func (a *App) setupRoutes() {
	g := a.Echo.Group(a.Config.PathPrefix)

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	g.FileFS("/public/site.css", "site.css", embeddedFS)
	g.Static(thumbnailsRoute, a.Config.ThumbnailsDir)
	g.Static("/public", a.Config.StaticDir)

	g.GET("/robots.txt", a.handleRobots)
	g.GET("/sitemap.xml", a.handleSitemap)
	g.GET(a.Config.RSS, a.handleFeed)

	g.GET("/", a.handleHome)
	g.GET("/blog/", a.handleBlog)
	g.GET("/projects/", a.handleProjects)
	g.GET("/:slug/", a.handlePost)
	g.POST("/theme/toggle/", a.handleThemeToggle)

	if a.Config.AdminPassword != "" {
		g.GET("/admin/", a.handleAdmin)
		g.POST("/admin/login/", a.handleAdminLogin)
		g.POST("/admin/logout/", a.handleAdminLogout)
		g.POST("/admin/reindex/", a.handleAdminReindex)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
