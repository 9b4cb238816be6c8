package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/mlukichev/clicker-backend/internal/service"
)

// CookieName carries the signed anonymous session token.
const CookieName = "clicker_session"

// ContextUserKey is where WithUser stores the resolved user id.
const ContextUserKey = "userID"

type sessionClaims struct {
	UserID uint64 `json:"uid"`
	jwt.RegisteredClaims
}

// SessionMiddleware resolves the request to a user. Sessions are anonymous:
// the cookie is an HS256 JWT whose only payload is the user id. A missing,
// invalid or stale token makes a fresh user, seeded with default game data,
// and re-issues the cookie.
type SessionMiddleware struct {
	sessions service.SessionService
	secret   []byte
	ttl      time.Duration
}

func NewSessionMiddleware(sessions service.SessionService, secret string, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, secret: []byte(secret), ttl: ttl}
}

func (m *SessionMiddleware) WithUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cookie, err := c.Cookie(CookieName); err == nil {
			if userID, err := m.Parse(cookie.Value); err == nil {
				if _, err := m.sessions.Resolve(ctx, userID); err == nil {
					c.Set(ContextUserKey, userID)
					return next(c)
				} else if !errors.Is(err, service.ErrNotFound) {
					return c.JSON(http.StatusInternalServerError, map[string]string{"error": "session lookup failed"})
				}
				// user row is gone (wiped database), fall through and start over
			}
		}

		u, err := m.sessions.CreateUser(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create session"})
		}
		token, err := m.Sign(u.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not issue session"})
		}
		c.SetCookie(&http.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(m.ttl),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		c.Set(ContextUserKey, u.ID)
		return next(c)
	}
}

func (m *SessionMiddleware) Sign(userID uint64) (string, error) {
	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

func (m *SessionMiddleware) Parse(tokenStr string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if claims, ok := token.Claims.(*sessionClaims); ok && token.Valid {
		return claims.UserID, nil
	}
	return 0, errors.New("invalid session token")
}

// UserID reads the resolved user id out of the echo context.
func UserID(c echo.Context) uint64 {
	id, _ := c.Get(ContextUserKey).(uint64)
	return id
}
