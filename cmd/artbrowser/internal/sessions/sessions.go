package sessions

import (
	"net/http"

	"github.com/adampresley/artbrowser/pkg/browser"
)

const CookieName = "artbrowser_session"

/*
FromRequest returns the session named by the request cookie, if it is
still registered.
*/
func FromRequest(registry *browser.Registry, r *http.Request) (*browser.Session, bool) {
	cookie, err := r.Cookie(CookieName)

	if err != nil || cookie.Value == "" {
		return nil, false
	}

	return registry.Get(cookie.Value)
}

// SetCookie binds the browser to session.
func SetCookie(w http.ResponseWriter, session *browser.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
