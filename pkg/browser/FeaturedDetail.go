package browser

import (
	"context"
	"strings"
	"time"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/adampresley/artbrowser/pkg/store"
)

// Labels of the facts that render as search shortcuts.
const (
	TermCulture   = "Culture"
	TermTechnique = "Technique"
	TermMedium    = "Medium"
	TermPeople    = "People"
)

var searchableTerms = map[string]string{
	"culture":   TermCulture,
	"technique": TermTechnique,
	"medium":    TermMedium,
	"people":    TermPeople,
}

type FeaturedDetailConfig struct {
	Catalog        services.CatalogServicer
	Store          *store.Store
	RequestTimeout time.Duration
}

type FeaturedDetail struct {
	catalog        services.CatalogServicer
	store          *store.Store
	requestTimeout time.Duration
}

func NewFeaturedDetail(config FeaturedDetailConfig) *FeaturedDetail {
	return &FeaturedDetail{
		catalog:        config.Catalog,
		store:          config.Store,
		requestTimeout: config.RequestTimeout,
	}
}

/*
Search runs the search shortcut for one fact. Only the search results
change; the featured record stays on screen.
*/
func (d *FeaturedDetail) Search(ctx context.Context, term, value string) error {
	label, ok := searchableTerms[strings.ToLower(strings.TrimSpace(term))]

	if !ok {
		return ErrUnknownTerm
	}

	if strings.TrimSpace(value) == "" {
		return ErrEmptySearchTerm
	}

	return d.store.Run(ctx, "search "+label, func(ctx context.Context) (models.SearchResult, error) {
		ctx, cancel := services.RequestContext(ctx, d.requestTimeout)
		defer cancel()

		return d.catalog.FetchQueryResultsFromTermAndValue(ctx, label, value)
	})
}
