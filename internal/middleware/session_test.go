package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mlukichev/clicker-backend/internal/model"
	"github.com/mlukichev/clicker-backend/internal/service"
)

type stubSessions struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newStubSessions() *stubSessions {
	return &stubSessions{users: make(map[uint64]*model.User)}
}

func (s *stubSessions) Resolve(_ context.Context, userID uint64) (*model.User, error) {
	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	return nil, service.ErrNotFound
}

func (s *stubSessions) CreateUser(_ context.Context) (*model.User, error) {
	s.nextID++
	u := &model.User{ID: s.nextID}
	s.users[u.ID] = u
	return u, nil
}

func TestSignParseRoundTrip(t *testing.T) {
	mw := NewSessionMiddleware(newStubSessions(), "test-secret", time.Hour)

	token, err := mw.Sign(42)
	require.NoError(t, err)

	userID, err := mw.Parse(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, userID)
}

func TestParseRejectsForeignToken(t *testing.T) {
	signer := NewSessionMiddleware(newStubSessions(), "secret-a", time.Hour)
	verifier := NewSessionMiddleware(newStubSessions(), "secret-b", time.Hour)

	token, err := signer.Sign(42)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestWithUserCreatesAndReusesSession(t *testing.T) {
	sessions := newStubSessions()
	mw := NewSessionMiddleware(sessions, "test-secret", time.Hour)
	e := echo.New()

	var seen []uint64
	h := mw.WithUser(func(c echo.Context) error {
		seen = append(seen, UserID(c))
		return c.NoContent(http.StatusOK)
	})

	// first contact creates the user and sets the cookie
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Len(t, sessions.users, 1)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session cookie not issued")

	// the same cookie maps back to the same user
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	require.Equal(t, []uint64{1, 1}, seen)
	require.Len(t, sessions.users, 1, "second request must not create another user")
}

func TestWithUserRecoversFromStaleToken(t *testing.T) {
	sessions := newStubSessions()
	mw := NewSessionMiddleware(sessions, "test-secret", time.Hour)
	e := echo.New()

	// token for a user that no longer exists (wiped database)
	token, err := mw.Sign(777)
	require.NoError(t, err)

	h := mw.WithUser(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	require.Len(t, sessions.users, 1, "stale token should bootstrap a fresh user")
}
