package home

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/components"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/sessions"
	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/viewmodels"
	"github.com/adampresley/artbrowser/pkg/browser"
	"github.com/adampresley/artbrowser/pkg/store"
)

const defaultKeepAlive = 25 * time.Second

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	KeepAlive time.Duration
	Registry  *browser.Registry
	Renderer  rendering.TemplateRenderer
}

type HomeController struct {
	keepAlive time.Duration
	registry  *browser.Registry
	renderer  rendering.TemplateRenderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	keepAlive := config.KeepAlive

	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}

	return HomeController{
		keepAlive: keepAlive,
		registry:  config.Registry,
		renderer:  config.Renderer,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	/*
	 * Ignore metadata queries, like ".well_know"
	 */
	if strings.HasPrefix(r.URL.String(), "/.") {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	pageName := "pages/home"

	viewData := viewmodels.Home{
		BaseViewModel: viewmodels.BaseViewModel{
			Message: "",
			IsHtmx:  httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
	}

	session, ok := sessions.FromRequest(c.registry, r)

	if !ok {
		session = c.registry.Create()
		sessions.SetCookie(w, session)
	}

	if err = session.Form.Mount(r.Context()); err != nil {
		viewData.Message = "Unable to load the century and classification lists. Please try again."
		viewData.IsError = true
	}

	if err = fillComponents(&viewData, components.NewView(session)); err != nil {
		slog.Error("error rendering components", "error", err, "session", session.ID)
		viewData.Message = "There was an error rendering the page."
		viewData.IsError = true
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
GET /events

Streams the session's loading flag, results and featured record as
server-sent events. Every event carries the out-of-band fragments for
the whole store, starting with the current state on connect.
*/
func (c HomeController) Events(w http.ResponseWriter, r *http.Request) {
	session, ok := sessions.FromRequest(c.registry, r)

	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)

	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	changed := make(chan struct{}, 1)

	unsubscribe := session.Store.Subscribe(func(store.State) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	defer unsubscribe()

	ticker := time.NewTicker(c.keepAlive)
	defer ticker.Stop()

	if err := c.pushState(w, session); err != nil {
		slog.Error("error writing event", "error", err, "session", session.ID)
		return
	}

	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-changed:
			if err := c.pushState(w, session); err != nil {
				slog.Debug("event stream closed", "error", err, "session", session.ID)
				return
			}

			flusher.Flush()

		case <-ticker.C:
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return
			}

			flusher.Flush()
		}
	}
}

func (c HomeController) pushState(w io.Writer, session *browser.Session) error {
	b := &bytes.Buffer{}

	if err := components.RenderState(b, components.NewView(session)); err != nil {
		return err
	}

	return WriteEvent(w, "state", b.String())
}

/*
WriteEvent writes one server-sent event. Multi-line data is split into
one data field per line.
*/
func WriteEvent(w io.Writer, event, data string) error {
	b := &strings.Builder{}

	if event != "" {
		fmt.Fprintf(b, "event: %s\n", event)
	}

	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		fmt.Fprintf(b, "data: %s\n", line)
	}

	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func fillComponents(viewData *viewmodels.Home, view components.View) error {
	var (
		err error
	)

	if viewData.Loading, err = components.HTML(components.Loading, view.Loading); err != nil {
		return err
	}

	if viewData.Search, err = components.HTML(components.Search, view.Search); err != nil {
		return err
	}

	if viewData.Preview, err = components.HTML(components.Preview, view.Preview); err != nil {
		return err
	}

	viewData.Feature, err = components.HTML(components.Feature, view.Feature)
	return err
}
