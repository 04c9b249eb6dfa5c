package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"labadmin/internal/logging"
	"labadmin/internal/model"
)

// tokenContextKey is where echo-jwt leaves the verified cookie token.
const tokenContextKey = "session_token"

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// SessionManager starts, loads and destroys cookie-backed sessions.
type SessionManager struct {
	store  SessionStore
	tokens *SessionTokenService
	cookie CookieConfig
	log    logging.Logger
}

// NewSessionManager creates a session manager.
func NewSessionManager(store SessionStore, tokens *SessionTokenService, cookie CookieConfig, log logging.Logger) *SessionManager {
	return &SessionManager{
		store:  store,
		tokens: tokens,
		cookie: cookie,
		log:    log,
	}
}

// LoadSession verifies the session cookie and, when it names a live session,
// puts that session in the request context. Requests without a usable cookie
// pass through untouched; gating happens per route.
func (m *SessionManager) LoadSession() echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:  m.tokens.SigningKey(),
		TokenLookup: "cookie:" + m.cookie.Name,
		ContextKey:  tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(jwt.RegisteredClaims)
		},
		// A missing, forged or expired cookie is just an anonymous request.
		ErrorHandler: func(echo.Context, error) error {
			return nil
		},
		ContinueOnIgnoredError: true,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(m.attach(next))
	}
}

func (m *SessionManager) attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get(tokenContextKey).(*jwt.Token)
		if !ok {
			return next(c)
		}
		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || claims.ID == "" {
			return next(c)
		}

		req := c.Request()
		sess, err := m.store.Get(req.Context(), claims.ID)
		if err != nil {
			m.log.Warn(req.Context(), "load session", "err", err)
			return next(c)
		}
		if sess == nil {
			return next(c)
		}

		c.SetRequest(req.WithContext(WithSession(req.Context(), sess)))
		return next(c)
	}
}

// Start creates a session for user and sets its cookie on the response.
func (m *SessionManager) Start(c echo.Context, user model.SessionUser) error {
	ctx := c.Request().Context()

	sess := &Session{ID: uuid.NewString(), User: &user}
	if err := m.store.Save(ctx, sess, m.cookie.TTL); err != nil {
		return err
	}

	token, err := m.tokens.Issue(sess.ID, m.cookie.TTL)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	// The previous session, if any, is replaced.
	if old, ok := SessionFromContext(ctx); ok {
		if err := m.store.Delete(ctx, old.ID); err != nil {
			m.log.Warn(ctx, "drop previous session", "err", err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetRequest(c.Request().WithContext(WithSession(ctx, sess)))
	return nil
}

// Destroy deletes the request's session from the store and expires the
// cookie. A request without a session is destroyed trivially.
func (m *SessionManager) Destroy(c echo.Context) error {
	ctx := c.Request().Context()

	if sess, ok := SessionFromContext(ctx); ok {
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetRequest(c.Request().WithContext(WithSession(ctx, nil)))
	return nil
}
