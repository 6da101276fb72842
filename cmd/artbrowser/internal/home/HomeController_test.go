package home

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adampresley/artbrowser/cmd/artbrowser/internal/sessions"
	"github.com/adampresley/artbrowser/pkg/browser"
	"github.com/adampresley/artbrowser/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEventSplitsLines(t *testing.T) {
	b := &strings.Builder{}

	require.NoError(t, WriteEvent(b, "state", "<div>\n<p>hi</p>\r\n</div>"))
	assert.Equal(t, "event: state\ndata: <div>\ndata: <p>hi</p>\ndata: </div>\n\n", b.String())
}

func TestWriteEventWithoutName(t *testing.T) {
	b := &strings.Builder{}

	require.NoError(t, WriteEvent(b, "", "x"))
	assert.Equal(t, "data: x\n\n", b.String())
}

func TestEventsRequiresSession(t *testing.T) {
	controller := NewHomeController(HomeControllerConfig{
		Registry: browser.NewRegistry(browser.RegistryConfig{}),
	})

	w := httptest.NewRecorder()
	controller.Events(w, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// readEvent returns the data lines of the next named event.
func readEvent(t *testing.T, reader *bufio.Reader) string {
	t.Helper()

	lines := []string{}
	inEvent := false

	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimRight(line, "\n")

		switch {
		case strings.HasPrefix(line, "event: "):
			inEvent = true

		case inEvent && strings.HasPrefix(line, "data: "):
			lines = append(lines, strings.TrimPrefix(line, "data: "))

		case inEvent && line == "":
			return strings.Join(lines, "\n")
		}
	}
}

func TestEventsStreamsStoreChanges(t *testing.T) {
	registry := browser.NewRegistry(browser.RegistryConfig{})
	session := registry.Create()

	controller := NewHomeController(HomeControllerConfig{
		KeepAlive: time.Hour,
		Registry:  registry,
	})

	server := httptest.NewServer(http.HandlerFunc(controller.Events))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: session.ID})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	initial := readEvent(t, reader)
	assert.Contains(t, initial, `<main id="feature" hx-swap-oob="true"></main>`)

	title := "Lantern"
	session.Store.SetFeaturedResult(&models.Record{ID: 4, Title: &title})

	updated := readEvent(t, reader)
	assert.Contains(t, updated, "<h3>Lantern</h3>")
}
