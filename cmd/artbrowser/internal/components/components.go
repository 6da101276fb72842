// Package components renders the search form, the results preview, the
// featured detail and the loading indicator as HTML fragments. The same
// fragments make up the home page and every htmx or SSE update.
package components

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/viewmodels"
	"github.com/adampresley/artbrowser/pkg/browser"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(template.New("components").ParseFS(templateFS, "templates/*.html"))

const (
	Loading = "loading"
	Search  = "search"
	Preview = "preview"
	Feature = "feature"
)

type frame struct {
	OOB   bool
	Model any
}

/*
View is everything the page shows for one session, already formatted.
*/
type View struct {
	Loading bool
	Search  viewmodels.SearchForm
	Preview viewmodels.Preview
	Feature viewmodels.Feature
}

func NewView(session *browser.Session) View {
	state := session.Store.State()

	return View{
		Loading: state.IsLoading,
		Search:  viewmodels.NewSearchForm(session.Form.Filter(), session.Form.Centuries(), session.Form.Classifications()),
		Preview: viewmodels.NewPreview(state.SearchResults),
		Feature: viewmodels.NewFeature(state.FeaturedResult),
	}
}

func Render(w io.Writer, name string, model any, oob bool) error {
	if err := templates.ExecuteTemplate(w, name, frame{OOB: oob, Model: model}); err != nil {
		return fmt.Errorf("error rendering component %s: %w", name, err)
	}

	return nil
}

// HTML renders a component in place, for embedding in a page.
func HTML(name string, model any) (template.HTML, error) {
	b := &bytes.Buffer{}

	if err := Render(b, name, model, false); err != nil {
		return "", err
	}

	return template.HTML(b.String()), nil
}

/*
RenderState writes the store-backed components as out-of-band swaps. The
search form is left alone so a user typing is never interrupted.
*/
func RenderState(w io.Writer, view View) error {
	if err := Render(w, Loading, view.Loading, true); err != nil {
		return err
	}

	if err := Render(w, Preview, view.Preview, true); err != nil {
		return err
	}

	return Render(w, Feature, view.Feature, true)
}
