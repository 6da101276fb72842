package services

import (
	"fmt"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/rfberaldo/sqlz"
	"github.com/robfig/cron/v3"
)

type SettingsServicer interface {
	Read() (*models.Settings, error)
	Save(settings *models.Settings) error
}

type SettingsServiceConfig struct {
	DB *sqlz.DB
}

type SettingsService struct {
	db *sqlz.DB
}

func NewSettingsService(config SettingsServiceConfig) SettingsService {
	return SettingsService{
		db: config.DB,
	}
}

func DefaultSettings() *models.Settings {
	return &models.Settings{
		ID:                    1,
		PageSize:              10,
		ThumbnailSize:         300,
		LookupRefreshSchedule: "0 3 * * *",
	}
}

func (s SettingsService) Read() (*models.Settings, error) {
	var (
		err error
	)

	result := DefaultSettings()

	sql := `
SELECT
	id
	, page_size
	, thumbnail_size
	, lookup_refresh_schedule
FROM settings
WHERE 1=1
	AND id=1
	`

	ctx, cancel := DBContext()
	defer cancel()

	if err = s.db.QueryRow(ctx, result, sql); err != nil && !sqlz.IsNotFound(err) {
		return result, fmt.Errorf("error querying for settings: %w", err)
	}

	return result, nil
}

func (s SettingsService) Save(settings *models.Settings) error {
	var (
		err error
	)

	if err = ValidateSettings(settings); err != nil {
		return err
	}

	sql := `
INSERT INTO settings (
	id
	, page_size
	, thumbnail_size
	, lookup_refresh_schedule
) VALUES (
	1
	, ?
	, ?
	, ?
)
ON CONFLICT (id) DO
UPDATE SET
	page_size=excluded.page_size
	, thumbnail_size=excluded.thumbnail_size
	, lookup_refresh_schedule=excluded.lookup_refresh_schedule
	`

	args := []any{
		settings.PageSize,
		settings.ThumbnailSize,
		settings.LookupRefreshSchedule,
	}

	ctx, cancel := DBContext()
	defer cancel()

	if _, err = s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}

	return nil
}

/*
ValidateSettings rejects values the API, the thumbnail creator or the
scheduler cannot work with. The API caps page size at 100.
*/
func ValidateSettings(settings *models.Settings) error {
	if settings.PageSize < 1 || settings.PageSize > 100 {
		return fmt.Errorf("page size must be between 1 and 100, got %d", settings.PageSize)
	}

	if settings.ThumbnailSize < 32 || settings.ThumbnailSize > 2048 {
		return fmt.Errorf("thumbnail size must be between 32 and 2048, got %d", settings.ThumbnailSize)
	}

	if settings.LookupRefreshSchedule == "" {
		return fmt.Errorf("lookup refresh schedule is required")
	}

	if _, err := cron.ParseStandard(settings.LookupRefreshSchedule); err != nil {
		return fmt.Errorf("lookup refresh schedule '%s' is not a valid cron expression: %w", settings.LookupRefreshSchedule, err)
	}

	return nil
}
