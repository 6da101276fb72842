package main

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/cron"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/browse"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/configuration"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/home"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/images"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/settings"
	"github.com/adampresley/artbrowser/pkg/browser"
	"github.com/adampresley/artbrowser/pkg/cache"
	"github.com/adampresley/artbrowser/pkg/collector"
	"github.com/adampresley/artbrowser/pkg/metrics"
	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	_ "github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
	"golang.org/x/time/rate"
)

var (
	Version string = "development"
	appName string = "artbrowser"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	db               *sqlz.DB
	catalogService   services.CatalogServicer
	jpegCacheCreator cache.CacheCreator
	lookupCollector  collector.Collector
	lookupService    services.LookupServicer
	registry         *browser.Registry
	renderer         rendering.TemplateRenderer
	settingsService  services.SettingsServicer
	thumbnailCache   services.ThumbnailCacher

	/* Controllers */
	browseController   browse.BrowseHandlers
	homeController     home.HomeHandlers
	imageController    images.ImageHandlers
	settingsController settings.SettingsHandlers
)

func main() {
	var (
		err          error
		userSettings *models.Settings
		apiCatalog   services.CatalogService
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("apiurl", config.APIBaseURL),
	)

	if config.APIKey == "" {
		slog.Warn("no catalog API key configured. requests will likely be rejected.")
	}

	slog.Debug("setting up...")

	binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
		panic(err)
	}

	migrateDatabase()

	/*
	 * Setup services
	 */
	renderer = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		LayoutsDir:        "layouts",
		ComponentsDir:     "components",
	})

	settingsService = services.NewSettingsService(services.SettingsServiceConfig{
		DB: db,
	})

	if userSettings, err = settingsService.Read(); err != nil {
		slog.Error("error reading settings from the database", "error", err)
		return
	}

	apiCatalog, err = services.NewCatalogService(services.CatalogServiceConfig{
		APIKey:          config.APIKey,
		BaseURL:         config.APIBaseURL,
		HTTPClient:      &http.Client{Timeout: config.RequestTimeout()},
		Limiter:         rate.NewLimiter(rate.Limit(config.RequestsPerSecond), max(config.RequestsPerSecond, 1)),
		SettingsService: settingsService,
	})

	if err != nil {
		slog.Error("error setting up the catalog service", "error", err)
		os.Exit(1)
	}

	lookupService = services.NewLookupService(services.LookupServiceConfig{
		DB:     db,
		MaxAge: config.LookupMaxAge(),
	})

	catalogService = services.NewCachingCatalogService(services.CachingCatalogServiceConfig{
		Catalog:       apiCatalog,
		LookupService: lookupService,
	})

	thumbnailCache = services.NewThumbnailCache(services.ThumbnailCacheConfig{
		CachePath: config.CacheDirectory,
	})

	jpegCacheCreator = cache.NewJpegCacheCreator()

	lookupCollector = collector.NewLookupCollector(collector.LookupCollectorConfig{
		Catalog:       apiCatalog,
		LookupService: lookupService,
	})

	registry = browser.NewRegistry(browser.RegistryConfig{
		Catalog:        catalogService,
		RequestTimeout: config.RequestTimeout(),
		IdleTimeout:    config.SessionIdleTimeout(),
	})

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		Registry: registry,
		Renderer: renderer,
	})

	browseController = browse.NewBrowseController(browse.BrowseControllerConfig{
		Registry: registry,
	})

	imageController = images.NewImageController(images.ImageControllerConfig{
		CacheCreator:    jpegCacheCreator,
		Config:          &config,
		HTTPClient:      &http.Client{Timeout: config.RequestTimeout()},
		SettingsService: settingsService,
		ThumbnailCache:  thumbnailCache,
	})

	settingsController = settings.NewSettingsController(settings.SettingsControllerConfig{
		LookupCollector: lookupCollector,
		Renderer:        renderer,
		SettingsService: settingsService,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /metrics", HandlerFunc: promhttp.Handler().ServeHTTP},
		{Path: "GET /", HandlerFunc: homeController.HomePage},
		{Path: "GET /events", HandlerFunc: homeController.Events},
		{Path: "POST /search", HandlerFunc: browseController.SearchAction},
		{Path: "POST /page/{direction}", HandlerFunc: browseController.PageAction},
		{Path: "POST /feature/{index}", HandlerFunc: browseController.FeatureAction},
		{Path: "POST /fact", HandlerFunc: browseController.FactAction},
		{Path: "GET /thumbnail", HandlerFunc: imageController.ServeThumbnail},
		{Path: "GET /settings", HandlerFunc: settingsController.SettingsPage},
		{Path: "POST /settings", HandlerFunc: settingsController.SettingsAction},
		{Path: "POST /settings/refresh-lookups", HandlerFunc: settingsController.RefreshLookupsAction},
	}

	routes = slices.Map(routes, func(route mux.Route, index int) mux.Route {
		route.HandlerFunc = metrics.Instrument(route.Path, route.HandlerFunc)
		return route
	})

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	setupCollectors(userSettings)
	setupSessionSweeper()

	/*
	 * Start cron jobs
	 */
	cron.Start()

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit
	_ = cron.Stop()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func migrateDatabase() {
	var (
		err  error
		dirs []os.DirEntry
		b    []byte
	)

	if dirs, err = os.ReadDir(config.DataMigrationDir); err != nil {
		panic(err)
	}

	for _, d := range dirs {
		if d.IsDir() {
			continue
		}

		if strings.HasPrefix(d.Name(), "commit") {
			if b, err = os.ReadFile(filepath.Join(config.DataMigrationDir, d.Name())); err != nil {
				panic(err)
			}

			if err = runSqlScript(b); err != nil {
				if !isIgnorableError(err) {
					panic(err)
				}
			}
		}
	}
}

func runSqlScript(b []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(b))
	return err
}

func isIgnorableError(err error) bool {
	if strings.Contains(err.Error(), "duplicate column") {
		return true
	}

	return false
}

func setupCollectors(settings *models.Settings) {
	collectors := []collector.Collector{
		lookupCollector,
	}

	cron.Add(settings.LookupRefreshSchedule, func() {
		errs := []error{}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
		defer cancel()

		for _, c := range collectors {
			es, err := c.Run(ctx)

			if err != nil {
				slog.Error("error running collector", "error", err)
				return
			}

			errs = append(errs, es...)
		}

		if len(errs) > 0 {
			slog.Error("errors captured during lookup collection", "errors", errs)
		}

		slog.Info("lookup collection completed")
	})
}

func setupSessionSweeper() {
	cron.Add(config.SessionSweepSchedule, func() {
		registry.Sweep()
	})
}
