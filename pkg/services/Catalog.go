package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/adampresley/artbrowser/pkg/metrics"
	"github.com/adampresley/artbrowser/pkg/models"
	"golang.org/x/time/rate"
)

var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected status from catalog API")
	ErrForeignCursor    = fmt.Errorf("cursor URL does not belong to the catalog API")
)

const (
	DefaultCatalogBaseURL = "https://api.harvardartmuseums.org"
	defaultPageSize       = 10
	lookupPageSize        = 100
)

type CatalogServicer interface {
	/*
	 * Searches objects using the century, classification, and free-text
	 * filter. Values are sent to the API exactly as given, including the
	 * "any" sentinel.
	 */
	FetchQueryResults(ctx context.Context, filter models.Filter) (models.SearchResult, error)

	/*
	 * Retrieves the page behind a cursor URL issued by a previous result.
	 */
	FetchQueryResultsFromURL(ctx context.Context, cursorURL string) (models.SearchResult, error)

	/*
	 * Searches objects where a single fact (culture, technique, medium,
	 * person, ...) matches value.
	 */
	FetchQueryResultsFromTermAndValue(ctx context.Context, term, value string) (models.SearchResult, error)

	FetchAllCenturies(ctx context.Context) ([]models.Lookup, error)
	FetchAllClassifications(ctx context.Context) ([]models.Lookup, error)
}

type CatalogServiceConfig struct {
	APIKey          string
	BaseURL         string
	HTTPClient      *http.Client
	Limiter         *rate.Limiter
	PageSize        int
	SettingsService SettingsServicer
}

type CatalogService struct {
	apiKey          string
	baseURL         *url.URL
	httpClient      *http.Client
	limiter         *rate.Limiter
	pageSizeDefault int
	settingsService SettingsServicer
}

type lookupResponse struct {
	Records []models.Lookup `json:"records"`
}

func NewCatalogService(config CatalogServiceConfig) (CatalogService, error) {
	var (
		err     error
		baseURL *url.URL
	)

	rawBase := config.BaseURL

	if rawBase == "" {
		rawBase = DefaultCatalogBaseURL
	}

	if baseURL, err = url.Parse(strings.TrimSuffix(rawBase, "/")); err != nil {
		return CatalogService{}, fmt.Errorf("error parsing catalog base URL '%s': %w", rawBase, err)
	}

	httpClient := config.HTTPClient

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return CatalogService{
		apiKey:          config.APIKey,
		baseURL:         baseURL,
		httpClient:      httpClient,
		limiter:         config.Limiter,
		pageSizeDefault: config.PageSize,
		settingsService: config.SettingsService,
	}, nil
}

func (s CatalogService) FetchQueryResults(ctx context.Context, filter models.Filter) (models.SearchResult, error) {
	var (
		result models.SearchResult
	)

	params := url.Values{
		"classification": {filter.Classification},
		"century":        {filter.Century},
		"keyword":        {filter.QueryString},
		"size":           {strconv.Itoa(s.pageSize())},
	}

	if err := s.get(ctx, "query", s.endpoint("object", params), &result); err != nil {
		return result, fmt.Errorf("error fetching query results: %w", err)
	}

	return result, nil
}

func (s CatalogService) FetchQueryResultsFromURL(ctx context.Context, cursorURL string) (models.SearchResult, error) {
	var (
		err    error
		result models.SearchResult
		cursor *url.URL
	)

	if cursor, err = url.Parse(cursorURL); err != nil {
		return result, fmt.Errorf("error parsing cursor URL: %w", err)
	}

	if !strings.EqualFold(cursor.Host, s.baseURL.Host) || cursor.Scheme != s.baseURL.Scheme {
		return result, fmt.Errorf("%w: %s", ErrForeignCursor, cursor.Host)
	}

	q := cursor.Query()

	if q.Get("apikey") == "" && s.apiKey != "" {
		q.Set("apikey", s.apiKey)
		cursor.RawQuery = q.Encode()
	}

	if err = s.get(ctx, "page", cursor.String(), &result); err != nil {
		return result, fmt.Errorf("error fetching page: %w", err)
	}

	return result, nil
}

func (s CatalogService) FetchQueryResultsFromTermAndValue(ctx context.Context, term, value string) (models.SearchResult, error) {
	var (
		result models.SearchResult
	)

	params := url.Values{
		TermParameter(term): {TermValue(value)},
		"size":              {strconv.Itoa(s.pageSize())},
	}

	if err := s.get(ctx, "term", s.endpoint("object", params), &result); err != nil {
		return result, fmt.Errorf("error fetching results for %s '%s': %w", term, value, err)
	}

	return result, nil
}

func (s CatalogService) FetchAllCenturies(ctx context.Context) ([]models.Lookup, error) {
	return s.fetchLookups(ctx, "century", "temporalorder")
}

func (s CatalogService) FetchAllClassifications(ctx context.Context) ([]models.Lookup, error) {
	return s.fetchLookups(ctx, "classification", "name")
}

func (s CatalogService) fetchLookups(ctx context.Context, resource, sort string) ([]models.Lookup, error) {
	var (
		response lookupResponse
	)

	params := url.Values{
		"size": {strconv.Itoa(lookupPageSize)},
		"sort": {sort},
	}

	if err := s.get(ctx, resource, s.endpoint(resource, params), &response); err != nil {
		return []models.Lookup{}, fmt.Errorf("error fetching %s list: %w", resource, err)
	}

	if response.Records == nil {
		return []models.Lookup{}, nil
	}

	return response.Records, nil
}

func (s CatalogService) endpoint(resource string, params url.Values) string {
	if s.apiKey != "" {
		params.Set("apikey", s.apiKey)
	}

	u := *s.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + resource
	u.RawQuery = params.Encode()

	return u.String()
}

func (s CatalogService) get(ctx context.Context, operation, reqURL string, dest any) error {
	start := time.Now()
	err := s.doGet(ctx, reqURL, dest)

	outcome := "success"

	if err != nil {
		outcome = "error"
	}

	metrics.CatalogRequestsTotal.WithLabelValues(operation, outcome).Inc()
	metrics.CatalogRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	return err
}

func (s CatalogService) doGet(ctx context.Context, reqURL string, dest any) error {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)

	if s.limiter != nil {
		if err = s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("error waiting for rate limiter: %w", err)
		}
	}

	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil); err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if resp, err = s.httpClient.Do(req); err != nil {
		return fmt.Errorf("catalog API request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: HTTP %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("error decoding catalog response: %w", err)
	}

	return nil
}

/*
pageSize prefers the stored settings, then the configured size, then
the API default.
*/
func (s CatalogService) pageSize() int {
	fallback := defaultPageSize

	if s.pageSizeDefault > 0 {
		fallback = s.pageSizeDefault
	}

	if s.settingsService == nil {
		return fallback
	}

	settings, err := s.settingsService.Read()

	if err != nil {
		slog.Warn("using default page size, settings could not be read", "error", err)
	}

	if settings == nil || settings.PageSize <= 0 {
		return fallback
	}

	return settings.PageSize
}

/*
TermParameter maps a fact label such as "Technique" or "People" to the
query parameter the API filters on.
*/
func TermParameter(term string) string {
	p := strings.ToLower(strings.TrimSpace(term))

	if p == "people" {
		return "person"
	}

	return p
}

/*
TermValue turns hyphenated values into the API's "|" OR syntax.
*/
func TermValue(value string) string {
	return strings.Join(strings.Split(value, "-"), "|")
}
