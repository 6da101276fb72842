package services

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/rfberaldo/sqlz"
)

type LookupServicer interface {
	/*
	 * Reads the cached list for a kind. The boolean is false when
	 * nothing has been cached yet.
	 */
	Get(kind models.LookupKind) ([]models.Lookup, bool, error)

	/*
	 * Replaces the cached list for a kind.
	 */
	Save(kind models.LookupKind, items []models.Lookup) error
}

type LookupServiceConfig struct {
	DB     *sqlz.DB
	MaxAge time.Duration
}

type LookupService struct {
	db     *sqlz.DB
	maxAge time.Duration
}

func NewLookupService(config LookupServiceConfig) LookupService {
	return LookupService{
		db:     config.DB,
		maxAge: config.MaxAge,
	}
}

/*
Reads the cached list for a kind. Entries older than the configured max
age are reported as missing so callers go back to the API.
*/
func (s LookupService) Get(kind models.LookupKind) ([]models.Lookup, bool, error) {
	var (
		err error
	)

	row := &models.CachedLookups{}

	sql := `
SELECT
	kind
	, items
	, refreshed_at
FROM lookups
WHERE 1=1
	AND kind=?
	`

	ctx, cancel := DBContext()
	defer cancel()

	if err = s.db.QueryRow(ctx, row, sql, string(kind)); err != nil {
		if sqlz.IsNotFound(err) {
			return []models.Lookup{}, false, nil
		}

		return []models.Lookup{}, false, fmt.Errorf("error reading cached %s lookups: %w", kind, err)
	}

	if s.maxAge > 0 && time.Since(time.Unix(row.RefreshedAt, 0)) > s.maxAge {
		return []models.Lookup{}, false, nil
	}

	return []models.Lookup(row.Items), true, nil
}

func (s LookupService) Save(kind models.LookupKind, items []models.Lookup) error {
	var (
		err     error
		encoded driver.Value
	)

	/*
	 * sqlz expands slice arguments, so the column goes in as its JSON text.
	 */
	if encoded, err = models.DbLookupSlice(items).Value(); err != nil {
		return fmt.Errorf("error encoding %s lookups: %w", kind, err)
	}

	sql := `
INSERT INTO lookups (
	kind
	, items
	, refreshed_at
) VALUES (
	?
	, ?
	, ?
)
ON CONFLICT (kind) DO
UPDATE SET
	items=excluded.items
	, refreshed_at=excluded.refreshed_at
	`

	args := []any{
		string(kind),
		encoded,
		time.Now().Unix(),
	}

	ctx, cancel := DBContext()
	defer cancel()

	if _, err = s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error saving %s lookups: %w", kind, err)
	}

	return nil
}
