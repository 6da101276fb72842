package browser

import (
	"context"
	"sync"

	"github.com/adampresley/artbrowser/pkg/models"
)

type termCall struct {
	Term  string
	Value string
}

type fakeCatalog struct {
	mu sync.Mutex

	queryCalls []models.Filter
	urlCalls   []string
	termCalls  []termCall

	result    models.SearchResult
	resultErr error

	centuries          []models.Lookup
	centuriesErr       error
	classifications    []models.Lookup
	classificationsErr error
}

func (f *fakeCatalog) FetchQueryResults(ctx context.Context, filter models.Filter) (models.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queryCalls = append(f.queryCalls, filter)
	return f.result, f.resultErr
}

func (f *fakeCatalog) FetchQueryResultsFromURL(ctx context.Context, cursorURL string) (models.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.urlCalls = append(f.urlCalls, cursorURL)
	return f.result, f.resultErr
}

func (f *fakeCatalog) FetchQueryResultsFromTermAndValue(ctx context.Context, term, value string) (models.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.termCalls = append(f.termCalls, termCall{Term: term, Value: value})
	return f.result, f.resultErr
}

func (f *fakeCatalog) FetchAllCenturies(ctx context.Context) ([]models.Lookup, error) {
	return f.centuries, f.centuriesErr
}

func (f *fakeCatalog) FetchAllClassifications(ctx context.Context) ([]models.Lookup, error) {
	return f.classifications, f.classificationsErr
}

func ptr(s string) *string {
	return &s
}
