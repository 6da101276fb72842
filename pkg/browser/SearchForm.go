package browser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/adampresley/artbrowser/pkg/store"
	"github.com/alitto/pond/v2"
)

type SearchFormConfig struct {
	Catalog        services.CatalogServicer
	Store          *store.Store
	RequestTimeout time.Duration
}

/*
SearchForm owns the filter inputs and the century and classification
option lists. Everything else it touches lives in the shared store.
*/
type SearchForm struct {
	catalog        services.CatalogServicer
	store          *store.Store
	requestTimeout time.Duration

	mu                 sync.Mutex
	filter             models.Filter
	centuryList        []models.Lookup
	classificationList []models.Lookup
}

func NewSearchForm(config SearchFormConfig) *SearchForm {
	return &SearchForm{
		catalog:            config.Catalog,
		store:              config.Store,
		requestTimeout:     config.RequestTimeout,
		filter:             models.NewFilter(),
		centuryList:        []models.Lookup{},
		classificationList: []models.Lookup{},
	}
}

/*
Mount resets the filter and loads both option lists concurrently. The
lists are only replaced when both lookups succeed; on any failure the
error is logged once and the previous lists stay.
*/
func (f *SearchForm) Mount(ctx context.Context) error {
	var (
		err             error
		centuries       []models.Lookup
		classifications []models.Lookup
	)

	f.mu.Lock()
	f.filter = models.NewFilter()
	f.mu.Unlock()

	pool := pond.NewPool(2)
	defer pool.StopAndWait()

	ctx, cancel := services.RequestContext(ctx, f.requestTimeout)
	defer cancel()

	group := pool.NewGroup()

	group.SubmitErr(func() error {
		var err error
		centuries, err = f.catalog.FetchAllCenturies(ctx)
		return err
	})

	group.SubmitErr(func() error {
		var err error
		classifications, err = f.catalog.FetchAllClassifications(ctx)
		return err
	})

	if err = group.Wait(); err != nil {
		slog.Error("error loading search options", "error", err)
		return fmt.Errorf("error loading search options: %w", err)
	}

	f.mu.Lock()
	f.centuryList = centuries
	f.classificationList = classifications
	f.mu.Unlock()

	return nil
}

/*
Submit records the filter and runs a search with it. The filter values
go to the catalog exactly as entered.
*/
func (f *SearchForm) Submit(ctx context.Context, filter models.Filter) error {
	f.mu.Lock()
	f.filter = filter
	f.mu.Unlock()

	return f.store.Run(ctx, "search", func(ctx context.Context) (models.SearchResult, error) {
		ctx, cancel := services.RequestContext(ctx, f.requestTimeout)
		defer cancel()

		return f.catalog.FetchQueryResults(ctx, filter)
	})
}

func (f *SearchForm) Filter() models.Filter {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.filter
}

func (f *SearchForm) Centuries() []models.Lookup {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.centuryList
}

func (f *SearchForm) Classifications() []models.Lookup {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.classificationList
}
