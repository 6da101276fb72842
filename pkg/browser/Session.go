package browser

import (
	"log/slog"
	"sync"
	"time"

	"github.com/adampresley/artbrowser/pkg/metrics"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/adampresley/artbrowser/pkg/store"
	"github.com/google/uuid"
)

/*
Session is one browser's view of the catalog: the shared store plus the
three components that read and update it.
*/
type Session struct {
	ID       string
	Store    *store.Store
	Form     *SearchForm
	Results  *ResultsList
	Featured *FeaturedDetail

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

type RegistryConfig struct {
	Catalog        services.CatalogServicer
	RequestTimeout time.Duration
	IdleTimeout    time.Duration
}

type Registry struct {
	catalog        services.CatalogServicer
	requestTimeout time.Duration
	idleTimeout    time.Duration
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(config RegistryConfig) *Registry {
	return &Registry{
		catalog:        config.Catalog,
		requestTimeout: config.RequestTimeout,
		idleTimeout:    config.IdleTimeout,
		now:            time.Now,
		sessions:       map[string]*Session{},
	}
}

/*
Create builds a session with a fresh store. The caller is expected to
mount its search form.
*/
func (r *Registry) Create() *Session {
	st := store.New()

	session := &Session{
		ID:    uuid.NewString(),
		Store: st,
		Form: NewSearchForm(SearchFormConfig{
			Catalog:        r.catalog,
			Store:          st,
			RequestTimeout: r.requestTimeout,
		}),
		Results: NewResultsList(ResultsListConfig{
			Catalog:        r.catalog,
			Store:          st,
			RequestTimeout: r.requestTimeout,
		}),
		Featured: NewFeaturedDetail(FeaturedDetailConfig{
			Catalog:        r.catalog,
			Store:          st,
			RequestTimeout: r.requestTimeout,
		}),
		lastSeen: r.now(),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	r.mu.Unlock()

	return session
}

// Get returns the session for id and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	r.mu.Unlock()

	if ok {
		session.touch(r.now())
	}

	return session, ok
}

// Sweep drops sessions idle for longer than the idle timeout.
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.idleTimeout)
	removed := 0

	r.mu.Lock()

	for id, session := range r.sessions {
		if session.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	r.mu.Unlock()

	if removed > 0 {
		slog.Info("swept idle sessions", "removed", removed)
	}

	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
