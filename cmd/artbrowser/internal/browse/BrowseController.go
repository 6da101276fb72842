package browse

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/components"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/sessions"
	"github.com/adampresley/artbrowser/pkg/browser"
	"github.com/adampresley/artbrowser/pkg/models"
)

type BrowseHandlers interface {
	SearchAction(w http.ResponseWriter, r *http.Request)
	PageAction(w http.ResponseWriter, r *http.Request)
	FeatureAction(w http.ResponseWriter, r *http.Request)
	FactAction(w http.ResponseWriter, r *http.Request)
}

type BrowseControllerConfig struct {
	Registry *browser.Registry
}

type BrowseController struct {
	registry *browser.Registry
}

func NewBrowseController(config BrowseControllerConfig) BrowseController {
	return BrowseController{
		registry: config.Registry,
	}
}

/*
POST /search
*/
func (c BrowseController) SearchAction(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)

	if !ok {
		return
	}

	filter := models.Filter{
		Century:        formValueOrAny(httphelpers.GetFromRequest[string](r, "century")),
		Classification: formValueOrAny(httphelpers.GetFromRequest[string](r, "classification")),
		QueryString:    httphelpers.GetFromRequest[string](r, "keywords"),
	}

	/*
	 * A failed search is already logged by the store and leaves the
	 * previous results on screen.
	 */
	_ = session.Form.Submit(r.Context(), filter)
	c.respond(w, r, session)
}

/*
POST /page/{direction}
*/
func (c BrowseController) PageAction(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)

	if !ok {
		return
	}

	direction := browser.Direction(httphelpers.GetFromRequest[string](r, "direction"))

	if direction != browser.DirectionPrevious && direction != browser.DirectionNext {
		http.Error(w, "unknown direction", http.StatusBadRequest)
		return
	}

	if err := session.Results.Page(r.Context(), direction); errors.Is(err, browser.ErrNoPage) {
		slog.Debug("page requested without a cursor", "direction", direction, "session", session.ID)
	}

	c.respond(w, r, session)
}

/*
POST /feature/{index}?id={recordID}
*/
func (c BrowseController) FeatureAction(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)

	if !ok {
		return
	}

	index := httphelpers.GetFromRequest[int](r, "index")
	recordID := httphelpers.GetFromRequest[int](r, "id")

	/*
	 * A stale click re-renders the current page so the user sees what
	 * is actually there now.
	 */
	if err := session.Results.Select(index, recordID); err != nil {
		slog.Warn("could not feature record", "error", err, "index", index, "id", recordID, "session", session.ID)
	}

	c.respond(w, r, session)
}

/*
POST /fact?term={term}&value={value}
*/
func (c BrowseController) FactAction(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)

	if !ok {
		return
	}

	term := httphelpers.GetFromRequest[string](r, "term")
	value := httphelpers.GetFromRequest[string](r, "value")

	err := session.Featured.Search(r.Context(), term, value)

	if errors.Is(err, browser.ErrUnknownTerm) || errors.Is(err, browser.ErrEmptySearchTerm) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c.respond(w, r, session)
}

func (c BrowseController) session(w http.ResponseWriter, r *http.Request) (*browser.Session, bool) {
	session, ok := sessions.FromRequest(c.registry, r)

	if ok {
		return session, true
	}

	if httphelpers.IsHtmx(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusNoContent)
		return nil, false
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil, false
}

/*
htmx requests get the updated components as out-of-band swaps. Plain
form posts go back to the home page.
*/
func (c BrowseController) respond(w http.ResponseWriter, r *http.Request, session *browser.Session) {
	if !httphelpers.IsHtmx(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := components.RenderState(w, components.NewView(session)); err != nil {
		slog.Error("error rendering components", "error", err, "session", session.ID)
	}
}

func formValueOrAny(value string) string {
	if strings.TrimSpace(value) == "" {
		return models.AnyOption
	}

	return value
}
