package services

import (
	"context"
	"log/slog"

	"github.com/adampresley/artbrowser/pkg/models"
)

type CachingCatalogServiceConfig struct {
	Catalog       CatalogServicer
	LookupService LookupServicer
}

/*
CachingCatalogService serves century and classification lists from the
lookup cache, falling back to the wrapped catalog on a miss. Searches
always go straight to the wrapped catalog.
*/
type CachingCatalogService struct {
	CatalogServicer
	lookupService LookupServicer
}

func NewCachingCatalogService(config CachingCatalogServiceConfig) CachingCatalogService {
	return CachingCatalogService{
		CatalogServicer: config.Catalog,
		lookupService:   config.LookupService,
	}
}

func (s CachingCatalogService) FetchAllCenturies(ctx context.Context) ([]models.Lookup, error) {
	return s.cached(models.LookupKindCentury, func() ([]models.Lookup, error) {
		return s.CatalogServicer.FetchAllCenturies(ctx)
	})
}

func (s CachingCatalogService) FetchAllClassifications(ctx context.Context) ([]models.Lookup, error) {
	return s.cached(models.LookupKindClassification, func() ([]models.Lookup, error) {
		return s.CatalogServicer.FetchAllClassifications(ctx)
	})
}

func (s CachingCatalogService) cached(kind models.LookupKind, fetch func() ([]models.Lookup, error)) ([]models.Lookup, error) {
	var (
		err   error
		items []models.Lookup
		found bool
	)

	if items, found, err = s.lookupService.Get(kind); err != nil {
		slog.Warn("lookup cache read failed, falling back to the API", "kind", kind, "error", err)
	}

	if found {
		return items, nil
	}

	if items, err = fetch(); err != nil {
		return items, err
	}

	if err = s.lookupService.Save(kind, items); err != nil {
		slog.Warn("could not cache lookups", "kind", kind, "error", err)
	}

	return items, nil
}
