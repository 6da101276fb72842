package images

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/configuration"
	"github.com/adampresley/artbrowser/pkg/cache"
	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
)

type ImageHandlers interface {
	ServeThumbnail(w http.ResponseWriter, r *http.Request)
}

type ImageControllerConfig struct {
	CacheCreator    cache.CacheCreator
	Config          *configuration.Config
	HTTPClient      *http.Client
	SettingsService services.SettingsServicer
	ThumbnailCache  services.ThumbnailCacher
}

type ImageController struct {
	cacheCreator    cache.CacheCreator
	config          *configuration.Config
	httpClient      *http.Client
	settingsService services.SettingsServicer
	thumbnailCache  services.ThumbnailCacher
}

func NewImageController(config ImageControllerConfig) ImageController {
	httpClient := config.HTTPClient

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return ImageController{
		cacheCreator:    config.CacheCreator,
		config:          config.Config,
		httpClient:      httpClient,
		settingsService: config.SettingsService,
		thumbnailCache:  config.ThumbnailCache,
	}
}

/*
GET /thumbnail?src={imageURL}

Serves a scaled-down copy of a catalog image from the disk cache,
creating it on first request. If the thumbnail cannot be made the
browser is sent to the original.
*/
func (c ImageController) ServeThumbnail(w http.ResponseWriter, r *http.Request) {
	var (
		err      error
		settings *models.Settings
	)

	src := httphelpers.GetFromRequest[string](r, "src")

	if !c.config.IsAllowedImageHost(src) {
		slog.Warn("refusing thumbnail for disallowed host", "src", src)
		http.Error(w, "Image host not allowed", http.StatusBadRequest)
		return
	}

	if settings, err = c.settingsService.Read(); err != nil {
		slog.Error("Error reading settings in ServeThumbnail", "error", err)
		http.Error(w, "Error reading settings", http.StatusInternalServerError)
		return
	}

	if !c.thumbnailCache.Exists(settings, src) {
		if err = c.createThumbnail(r.Context(), settings, src); err != nil {
			slog.Error("Error creating thumbnail, redirecting to original", "error", err, "src", src)
			http.Redirect(w, r, src, http.StatusFound)
			return
		}
	}

	c.serveThumbnail(w, r, settings, src)
}

func (c ImageController) createThumbnail(ctx context.Context, settings *models.Settings, src string) error {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)

	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, src, nil); err != nil {
		return fmt.Errorf("error building image request: %w", err)
	}

	if resp, err = c.httpClient.Do(req); err != nil {
		return fmt.Errorf("error downloading image: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	fullPath := c.thumbnailCache.GetFullCachePath(settings, src)

	return c.cacheCreator.CreateCacheFile(resp.Body, fullPath, uint(settings.ThumbnailSize))
}

func (c ImageController) serveThumbnail(w http.ResponseWriter, r *http.Request, settings *models.Settings, src string) {
	var (
		err  error
		f    *os.File
		info fs.FileInfo
	)

	fullPath := c.thumbnailCache.GetFullCachePath(settings, src)

	if f, err = os.Open(fullPath); err != nil {
		slog.Error("Error opening cached image file", "error", err, "path", fullPath)
		http.Error(w, "Error retrieving cached image", http.StatusInternalServerError)
		return
	}

	defer f.Close()

	modTime := time.Now()

	if info, err = f.Stat(); err == nil {
		modTime = info.ModTime()
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, "thumbnail.jpg", modTime, f)
}
