// Package store holds the browse state shared by the search form, the
// results list and the featured detail view of one browser session.
//
// All user-triggered fetches go through Run, which owns the loading flag
// and decides whether a response is still current enough to apply.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/adampresley/artbrowser/pkg/metrics"
	"github.com/adampresley/artbrowser/pkg/models"
)

// State is an immutable snapshot handed to readers and listeners.
type State struct {
	IsLoading      bool
	SearchResults  models.SearchResult
	FeaturedResult *models.Record
}

// Listener is called after every state change with the new snapshot.
type Listener func(State)

// Action performs one fetch and returns the page that should replace the
// current search results.
type Action func(ctx context.Context) (models.SearchResult, error)

type Store struct {
	mu         sync.Mutex
	state      State
	inFlight   int
	generation uint64
	listeners  map[int]Listener
	nextID     int
}

func New() *Store {
	return &Store{
		state: State{
			SearchResults: models.SearchResult{Records: []models.Record{}},
		},
		listeners: map[int]Listener{},
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetSearchResults replaces the current page wholesale.
func (s *Store) SetSearchResults(result models.SearchResult) {
	s.update(func(st *State) {
		st.SearchResults = normalize(result)
	})
}

// SetFeaturedResult promotes a record to the detail view. nil clears it.
func (s *Store) SetFeaturedResult(record *models.Record) {
	s.update(func(st *State) {
		st.FeaturedResult = record
	})
}

/*
Run is the guarded fetch sequence: the loading flag goes up, action is
awaited, a successful page replaces the search results, a failure is
logged and leaves state untouched, and the loading flag comes down on
every path.

Each call takes a new generation. A response is applied only when no
newer Run has started in the meantime, so an old page resolving late
cannot overwrite a newer one. The loading flag stays up while any call
is outstanding.
*/
func (s *Store) Run(ctx context.Context, name string, action Action) error {
	generation := s.begin()
	defer s.end()

	result, err := action(ctx)

	if err != nil {
		slog.Error("fetch failed", "action", name, "error", err)
		return err
	}

	applied := s.updateIf(func(st *State) bool {
		if generation != s.generation {
			return false
		}

		st.SearchResults = normalize(result)
		return true
	})

	if !applied {
		metrics.StaleResponsesTotal.Inc()
		slog.Debug("dropping stale response", "action", name, "generation", generation)
	}

	return nil
}

func (s *Store) begin() uint64 {
	var generation uint64

	s.update(func(st *State) {
		s.generation++
		generation = s.generation
		s.inFlight++
		st.IsLoading = true
	})

	metrics.FetchesInFlight.Inc()
	return generation
}

func (s *Store) end() {
	s.update(func(st *State) {
		s.inFlight--
		st.IsLoading = s.inFlight > 0
	})

	metrics.FetchesInFlight.Dec()
}

func (s *Store) update(fn func(st *State)) {
	s.updateIf(func(st *State) bool {
		fn(st)
		return true
	})
}

func (s *Store) updateIf(fn func(st *State) bool) bool {
	s.mu.Lock()

	if !fn(&s.state) {
		s.mu.Unlock()
		return false
	}

	snapshot := s.state
	listeners := make([]Listener, 0, len(s.listeners))

	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}

	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}

	return true
}

func normalize(result models.SearchResult) models.SearchResult {
	if result.Records == nil {
		result.Records = []models.Record{}
	}

	return result
}
