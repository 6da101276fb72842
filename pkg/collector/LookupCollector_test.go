package collector

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	services.CatalogServicer

	centuries          []models.Lookup
	classificationsErr error
	block              chan struct{}
}

func (s *stubCatalog) FetchAllCenturies(ctx context.Context) ([]models.Lookup, error) {
	if s.block != nil {
		<-s.block
	}

	return s.centuries, nil
}

func (s *stubCatalog) FetchAllClassifications(ctx context.Context) ([]models.Lookup, error) {
	return []models.Lookup{{ID: 2, Name: "Paintings"}}, s.classificationsErr
}

type recordingLookups struct {
	mu    sync.Mutex
	saved map[models.LookupKind][]models.Lookup
}

func (r *recordingLookups) Get(kind models.LookupKind) ([]models.Lookup, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.saved[kind]
	return items, ok, nil
}

func (r *recordingLookups) Save(kind models.LookupKind, items []models.Lookup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saved[kind] = items
	return nil
}

func TestLookupCollectorRefreshesBothLists(t *testing.T) {
	lookups := &recordingLookups{saved: map[models.LookupKind][]models.Lookup{}}
	c := NewLookupCollector(LookupCollectorConfig{
		Catalog:       &stubCatalog{centuries: []models.Lookup{{ID: 1, Name: "1800s"}}},
		LookupService: lookups,
	})

	errs, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, errs)

	assert.Equal(t, []models.Lookup{{ID: 1, Name: "1800s"}}, lookups.saved[models.LookupKindCentury])
	assert.Equal(t, []models.Lookup{{ID: 2, Name: "Paintings"}}, lookups.saved[models.LookupKindClassification])
}

func TestLookupCollectorReportsPartialFailure(t *testing.T) {
	lookups := &recordingLookups{saved: map[models.LookupKind][]models.Lookup{}}
	c := NewLookupCollector(LookupCollectorConfig{
		Catalog: &stubCatalog{
			centuries:          []models.Lookup{{ID: 1, Name: "1800s"}},
			classificationsErr: errors.New("down"),
		},
		LookupService: lookups,
	})

	errs, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "classification")

	_, ok := lookups.saved[models.LookupKindClassification]
	assert.False(t, ok)
	assert.Len(t, lookups.saved[models.LookupKindCentury], 1)
}

func TestLookupCollectorRejectsOverlappingRuns(t *testing.T) {
	block := make(chan struct{})
	c := NewLookupCollector(LookupCollectorConfig{
		Catalog:       &stubCatalog{block: block},
		LookupService: &recordingLookups{saved: map[models.LookupKind][]models.Lookup{}},
	})

	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = c.Run(context.Background())
	}()

	require.Eventually(t, func() bool { return c.running.Load() }, time.Second, time.Millisecond)

	_, err := c.Run(context.Background())
	assert.ErrorIs(t, err, ErrCollectorAlreadyRunning)

	close(block)
	<-done
}

type failingLookups struct {
	recordingLookups
	failKind models.LookupKind
}

func (f *failingLookups) Save(kind models.LookupKind, items []models.Lookup) error {
	if kind == f.failKind {
		return errors.New("disk full")
	}

	return f.recordingLookups.Save(kind, items)
}

func TestLookupCollectorReportsFailedSave(t *testing.T) {
	lookups := &failingLookups{
		recordingLookups: recordingLookups{saved: map[models.LookupKind][]models.Lookup{}},
		failKind:         models.LookupKindCentury,
	}

	c := NewLookupCollector(LookupCollectorConfig{
		Catalog:       &stubCatalog{centuries: []models.Lookup{{ID: 1, Name: "1800s"}}},
		LookupService: lookups,
	})

	errs, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "could not save century lookups")

	assert.Equal(t, []models.Lookup{{ID: 2, Name: "Paintings"}}, lookups.saved[models.LookupKindClassification])
}

func TestLookupCollectorReportsEveryFailedKind(t *testing.T) {
	lookups := &failingLookups{
		recordingLookups: recordingLookups{saved: map[models.LookupKind][]models.Lookup{}},
		failKind:         models.LookupKindCentury,
	}

	c := NewLookupCollector(LookupCollectorConfig{
		Catalog:       &stubCatalog{classificationsErr: errors.New("down")},
		LookupService: lookups,
	})

	errs, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, errs, 2)
	assert.Empty(t, lookups.saved)
}
