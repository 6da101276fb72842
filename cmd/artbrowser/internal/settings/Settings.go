package settings

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/viewmodels"
	"github.com/adampresley/artbrowser/pkg/collector"
	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
)

type SettingsHandlers interface {
	SettingsPage(w http.ResponseWriter, r *http.Request)
	SettingsAction(w http.ResponseWriter, r *http.Request)
	RefreshLookupsAction(w http.ResponseWriter, r *http.Request)
}

type SettingsControllerConfig struct {
	LookupCollector collector.Collector
	Renderer        rendering.TemplateRenderer
	SettingsService services.SettingsServicer
}

type SettingsController struct {
	lookupCollector collector.Collector
	renderer        rendering.TemplateRenderer
	settingsService services.SettingsServicer
}

func NewSettingsController(config SettingsControllerConfig) SettingsController {
	return SettingsController{
		lookupCollector: config.LookupCollector,
		renderer:        config.Renderer,
		settingsService: config.SettingsService,
	}
}

/*
GET /settings
*/
func (c SettingsController) SettingsPage(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	pageName := "pages/settings"

	viewData := viewmodels.Settings{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Settings: &models.Settings{},
	}

	if viewData.Settings, err = c.settingsService.Read(); err != nil {
		slog.Error("error reading settings", "error", err)
		viewData.IsError = true
		viewData.Message = "Error reading settings. Please review logs for more details."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
POST /settings
*/
func (c SettingsController) SettingsAction(w http.ResponseWriter, r *http.Request) {
	var (
		err      error
		settings models.Settings
	)

	pageName := "pages/settings"

	viewData := viewmodels.Settings{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Settings: &models.Settings{},
	}

	settings = models.Settings{
		ID:                    1,
		PageSize:              httphelpers.GetFromRequest[int](r, "pageSize"),
		ThumbnailSize:         httphelpers.GetFromRequest[int](r, "thumbnailSize"),
		LookupRefreshSchedule: httphelpers.GetFromRequest[string](r, "lookupRefreshSchedule"),
	}

	if err = c.settingsService.Save(&settings); err != nil {
		slog.Error("error saving settings", "error", err)
		viewData.IsError = true
		viewData.Message = "Error saving settings: " + err.Error()
		viewData.Settings = &settings

		c.renderer.Render(pageName, viewData, w)
		return
	}

	if viewData.Settings, err = c.settingsService.Read(); err != nil {
		slog.Error("error reading settings after save", "error", err)
		viewData.IsError = true
		viewData.Message = "Settings saved, but there was an error reading them back. Please refresh the page."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	viewData.Message = "Settings saved successfully. A new refresh schedule applies after a restart."
	c.renderer.Render(pageName, viewData, w)
}

/*
POST /settings/refresh-lookups
*/
func (c SettingsController) RefreshLookupsAction(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		errs []error
	)

	pageName := "pages/settings"

	viewData := viewmodels.Settings{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Settings: services.DefaultSettings(),
	}

	if viewData.Settings, err = c.settingsService.Read(); err != nil {
		slog.Error("error reading settings", "error", err)
	}

	errs, err = c.lookupCollector.Run(r.Context())

	switch {
	case errors.Is(err, collector.ErrCollectorAlreadyRunning):
		viewData.Message = "A lookup refresh is already running."

	case err != nil:
		slog.Error("error refreshing lookups", "error", err)
		viewData.IsError = true
		viewData.Message = "Error refreshing lookups. Please review logs for more details."

	case len(errs) > 0:
		slog.Error("errors captured during lookup refresh", "errors", errs)
		viewData.IsError = true
		viewData.Message = "Some lookups could not be refreshed. Please review logs for more details."

	default:
		viewData.Message = "Century and classification lists refreshed."
	}

	c.renderer.Render(pageName, viewData, w)
}
