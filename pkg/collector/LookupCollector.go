package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/alitto/pond/v2"
)

type LookupCollectorConfig struct {
	Catalog       services.CatalogServicer
	LookupService services.LookupServicer
}

/*
LookupCollector refreshes the cached century and classification lists
straight from the catalog API.
*/
type LookupCollector struct {
	catalog       services.CatalogServicer
	lookupService services.LookupServicer

	running atomic.Bool
}

type lookupFetch struct {
	kind  models.LookupKind
	fetch func(ctx context.Context) ([]models.Lookup, error)
}

func NewLookupCollector(config LookupCollectorConfig) *LookupCollector {
	return &LookupCollector{
		catalog:       config.Catalog,
		lookupService: config.LookupService,
	}
}

func (c *LookupCollector) Run(ctx context.Context) ([]error, error) {
	if !c.running.CompareAndSwap(false, true) {
		return []error{}, ErrCollectorAlreadyRunning
	}

	defer c.running.Store(false)

	fetches := []lookupFetch{
		{kind: models.LookupKindCentury, fetch: c.catalog.FetchAllCenturies},
		{kind: models.LookupKindClassification, fetch: c.catalog.FetchAllClassifications},
	}

	/*
	 * Each kind is fetched and saved on its own; one failing list must
	 * not stop the other from being refreshed.
	 */
	kindErrs := make([]error, len(fetches))

	pool := pond.NewPool(len(fetches))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for index, f := range fetches {
		group.Submit(func() {
			items, err := f.fetch(ctx)

			if err != nil {
				kindErrs[index] = fmt.Errorf("could not fetch %s lookups: %w", f.kind, err)
				return
			}

			if err = c.lookupService.Save(f.kind, items); err != nil {
				kindErrs[index] = fmt.Errorf("could not save %s lookups: %w", f.kind, err)
				return
			}

			slog.Info("refreshed lookups", "kind", f.kind, "count", len(items))
		})
	}

	if err := group.Wait(); err != nil {
		return []error{}, fmt.Errorf("error waiting for lookup refresh: %w", err)
	}

	errs := []error{}

	for _, err := range kindErrs {
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errs, nil
}
