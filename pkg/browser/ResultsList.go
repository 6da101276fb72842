package browser

import (
	"context"
	"time"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/adampresley/artbrowser/pkg/store"
)

type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

type ResultsListConfig struct {
	Catalog        services.CatalogServicer
	Store          *store.Store
	RequestTimeout time.Duration
}

type ResultsList struct {
	catalog        services.CatalogServicer
	store          *store.Store
	requestTimeout time.Duration
}

func NewResultsList(config ResultsListConfig) *ResultsList {
	return &ResultsList{
		catalog:        config.Catalog,
		store:          config.Store,
		requestTimeout: config.RequestTimeout,
	}
}

/*
Page walks to the previous or next page using the cursor of the page
currently in the store. A missing cursor means the control is disabled
and nothing is fetched.
*/
func (l *ResultsList) Page(ctx context.Context, direction Direction) error {
	info := l.store.State().SearchResults.Info
	cursor := info.Next

	if direction == DirectionPrevious {
		cursor = info.Prev
	}

	if cursor == "" {
		return ErrNoPage
	}

	return l.store.Run(ctx, "page "+string(direction), func(ctx context.Context) (models.SearchResult, error) {
		ctx, cancel := services.RequestContext(ctx, l.requestTimeout)
		defer cancel()

		return l.catalog.FetchQueryResultsFromURL(ctx, cursor)
	})
}

/*
Select promotes the record at index on the current page to featured.
When recordID is non-zero it must match the record found there, which
catches clicks on a page that has since been replaced.
*/
func (l *ResultsList) Select(index, recordID int) error {
	record, ok := l.store.State().SearchResults.RecordAt(index)

	if !ok {
		return ErrRecordNotFound
	}

	if recordID != 0 && record.ID != recordID {
		return ErrRecordMismatch
	}

	l.store.SetFeaturedResult(&record)
	return nil
}
