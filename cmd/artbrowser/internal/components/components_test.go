package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/viewmodels"
	"github.com/adampresley/artbrowser/pkg/browser"
	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/adampresley/artbrowser/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func render(t *testing.T, name string, model any, oob bool) string {
	t.Helper()

	b := &bytes.Buffer{}
	require.NoError(t, Render(b, name, model, oob))

	return b.String()
}

func TestLoadingHiddenWhenIdle(t *testing.T) {
	idle := render(t, Loading, false, false)
	busy := render(t, Loading, true, true)

	assert.Contains(t, idle, " hidden")
	assert.NotContains(t, busy, " hidden")
	assert.Contains(t, busy, `hx-swap-oob="true"`)
}

func TestSearchRendersOptions(t *testing.T) {
	form := viewmodels.NewSearchForm(
		models.Filter{Century: "any", Classification: "26", QueryString: "cat & dog"},
		[]models.Lookup{{ID: 37, Name: "19th century"}},
		[]models.Lookup{{ID: 26, Name: "Paintings"}},
	)

	out := render(t, Search, form, false)

	assert.Contains(t, out, `value="cat &amp; dog"`)
	assert.Contains(t, out, `<option value="26" selected>Paintings</option>`)
	assert.Contains(t, out, `<option value="37">19th century</option>`)
	assert.Contains(t, out, `<option value="any" selected>Any</option>`)
	assert.NotContains(t, out, "hx-swap-oob")
}

func TestPreviewDisablesMissingCursors(t *testing.T) {
	preview := viewmodels.NewPreview(models.SearchResult{
		Info: models.PageInfo{Next: "https://api.example/next"},
		Records: []models.Record{
			{ID: 5, Title: ptr("Bowl"), PrimaryImageURL: ptr("https://nrs.harvard.edu/bowl")},
			{ID: 6},
		},
	})

	out := render(t, Preview, preview, false)

	assert.Contains(t, out, `hx-post="/page/previous" hx-swap="none" disabled`)
	assert.NotContains(t, out, `hx-post="/page/next" hx-swap="none" disabled`)
	assert.Contains(t, out, `hx-post="/feature/0?id=5"`)
	assert.Contains(t, out, `hx-post="/feature/1?id=6"`)
	assert.Contains(t, out, `alt="Bowl"`)
	assert.Contains(t, out, viewmodels.MissingInfoLabel)
	assert.Equal(t, 1, strings.Count(out, "<img"))
}

func TestFeatureEmptyWhenNothingFeatured(t *testing.T) {
	out := strings.TrimSpace(render(t, Feature, viewmodels.NewFeature(nil), false))
	assert.Equal(t, `<main id="feature"></main>`, out)
}

func TestFeatureRendersSearchableFacts(t *testing.T) {
	feature := viewmodels.NewFeature(&models.Record{
		ID:      1,
		Title:   ptr("Mask"),
		Culture: ptr("Yoruba"),
		Style:   ptr("Geometric"),
	})

	out := render(t, Feature, feature, true)

	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Contains(t, out, `hx-post="/fact?term=Culture&amp;value=Yoruba"`)
	assert.Contains(t, out, `<span class="content">Geometric</span>`)
	assert.Contains(t, out, "<h3>Mask</h3>")
}

func TestRenderStateSendsStoreBackedComponents(t *testing.T) {
	st := store.New()
	st.SetFeaturedResult(&models.Record{ID: 2, Title: ptr("Print")})

	session := &browser.Session{
		Store: st,
		Form:  browser.NewSearchForm(browser.SearchFormConfig{Store: st}),
	}

	b := &bytes.Buffer{}
	require.NoError(t, RenderState(b, NewView(session)))

	out := b.String()
	assert.Contains(t, out, `id="loading"`)
	assert.Contains(t, out, `id="preview"`)
	assert.Contains(t, out, "<h3>Print</h3>")
	assert.NotContains(t, out, `id="search"`)
	assert.Equal(t, 3, strings.Count(out, `hx-swap-oob="true"`))
}

func TestRenderStateShowsLoadingUntilLastFetchSettles(t *testing.T) {
	st := store.New()

	session := &browser.Session{
		Store: st,
		Form:  browser.NewSearchForm(browser.SearchFormConfig{Store: st}),
	}

	loadingHidden := func() bool {
		b := &bytes.Buffer{}
		require.NoError(t, Render(b, Loading, NewView(session).Loading, true))
		return strings.Contains(b.String(), " hidden")
	}

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)

		_ = st.Run(context.Background(), "slow", func(ctx context.Context) (models.SearchResult, error) {
			close(started)
			<-release
			return models.SearchResult{}, nil
		})
	}()

	<-started

	require.NoError(t, st.Run(context.Background(), "fast", func(ctx context.Context) (models.SearchResult, error) {
		return models.SearchResult{}, nil
	}))

	assert.False(t, loadingHidden(), "a fetch is still outstanding")

	close(release)
	<-done

	assert.True(t, loadingHidden())
}

func TestHTMLRendersInPlace(t *testing.T) {
	out, err := HTML(Loading, true)

	require.NoError(t, err)
	assert.Contains(t, string(out), `id="loading"`)
	assert.NotContains(t, string(out), "hx-swap-oob")
}
