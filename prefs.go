package folio

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/arbazsiddiqui/folio/theme"
)

const (
	prefsSession = "folio_prefs"
	prefsMaxAge  = 60 * 60 * 24 * 365
)

// sessionStorage keeps theme preferences in a signed cookie so they survive
// across visits without server-side state.
type sessionStorage struct {
	c      echo.Context
	secure bool
}

func (s sessionStorage) session() *sessions.Session {
	// A cookie signed with an old secret yields an error and a fresh session;
	// the fresh session is what we want.
	sess, _ := session.Get(prefsSession, s.c)
	return sess
}

func (s sessionStorage) Get(key string) (string, bool) {
	sess := s.session()
	if sess == nil {
		return "", false
	}
	v, ok := sess.Values[key].(string)
	return v, ok
}

func (s sessionStorage) Set(key, value string) error {
	sess := s.session()
	if sess == nil {
		return errNoSession
	}
	sess.Values[key] = value
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   prefsMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	}
	return sess.Save(s.c.Request(), s.c.Response())
}

var errNoSession = echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable")

// themeState loads the visitor's theme from their preferences cookie.
func (a *App) themeState(c echo.Context) *theme.State {
	return theme.Load(sessionStorage{c: c, secure: a.Config.CookieSecure})
}
