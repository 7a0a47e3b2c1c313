package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := Session()(func(c echo.Context) error {
		seen = SessionToken(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestSessionMintsTokenWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	rec, seen := runSession(t, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(SessionHeader))

	// A cookie is set so browsers keep the session without client code.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
}

func TestSessionPrefersHeaderToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	req.Header.Set(SessionHeader, "tok-from-header")
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "tok-from-cookie"})

	rec, seen := runSession(t, req)

	assert.Equal(t, "tok-from-header", seen)
	assert.Equal(t, "tok-from-header", rec.Header().Get(SessionHeader))
	assert.Empty(t, rec.Result().Cookies(), "no new cookie when a token was supplied")
}

func TestSessionFallsBackToCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "tok-from-cookie"})

	_, seen := runSession(t, req)
	assert.Equal(t, "tok-from-cookie", seen)
}

func TestSessionTokenMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, SessionToken(c))
}
