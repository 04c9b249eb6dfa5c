package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labadmin/internal/cache"
	"labadmin/internal/logging"
	"labadmin/internal/model"
)

const testCookie = "connect.sid"

type memorySessionStore struct {
	mu        sync.Mutex
	sessions  map[string]Session
	deleteErr error
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]Session{}}
}

func (s *memorySessionStore) Save(_ context.Context, sess *Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, id)
	return nil
}

func newTestManager(store SessionStore) *SessionManager {
	return NewSessionManager(
		store,
		NewSessionTokenService("test-secret"),
		CookieConfig{Name: testCookie, TTL: time.Hour},
		logging.New(io.Discard, "error"),
	)
}

// newTestServer wires the manager the same way the router does.
func newTestServer(m *SessionManager) *echo.Echo {
	e := echo.New()
	e.Use(m.LoadSession())

	e.POST("/login", func(c echo.Context) error {
		if err := m.Start(c, model.SessionUser{Name: "ana", Email: "ana@lab.br"}); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/logout", func(c echo.Context) error {
		if err := m.Destroy(c); err != nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/whoami", func(c echo.Context) error {
		user, ok := UserFromContext(c.Request().Context())
		if !ok {
			return c.NoContent(http.StatusUnauthorized)
		}
		return c.JSON(http.StatusOK, user)
	})
	e.GET("/private", func(c echo.Context) error {
		return c.String(http.StatusOK, "secret")
	}, RequireSession("/"))
	return e
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", testCookie)
	return nil
}

func do(e *echo.Echo, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSessionManager_StartThenLoad(t *testing.T) {
	store := newMemorySessionStore()
	e := newTestServer(newTestManager(store))

	rec := do(e, http.MethodPost, "/login", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Len(t, store.sessions, 1)

	rec = do(e, http.MethodGet, "/whoami", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"nome":"ana","email":"ana@lab.br"}`, rec.Body.String())
}

func TestSessionManager_AnonymousRequest(t *testing.T) {
	e := newTestServer(newTestManager(newMemorySessionStore()))

	rec := do(e, http.MethodGet, "/whoami", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionManager_ForgedCookieIgnored(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["abc"] = Session{ID: "abc", User: &model.SessionUser{Name: "eve"}}
	e := newTestServer(newTestManager(store))

	forged, err := NewSessionTokenService("other-secret").Issue("abc", time.Hour)
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/whoami", &http.Cookie{Name: testCookie, Value: forged})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/whoami", &http.Cookie{Name: testCookie, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionManager_UnknownSessionIgnored(t *testing.T) {
	e := newTestServer(newTestManager(newMemorySessionStore()))

	token, err := NewSessionTokenService("test-secret").Issue("gone", time.Hour)
	require.NoError(t, err)

	rec := do(e, http.MethodGet, "/whoami", &http.Cookie{Name: testCookie, Value: token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionManager_DestroyEndsSession(t *testing.T) {
	store := newMemorySessionStore()
	e := newTestServer(newTestManager(store))

	cookie := sessionCookie(t, do(e, http.MethodPost, "/login", nil))

	rec := do(e, http.MethodGet, "/logout", cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.sessions)
	assert.Equal(t, -1, sessionCookie(t, rec).MaxAge)

	// The old cookie no longer opens anything.
	rec = do(e, http.MethodGet, "/private", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionManager_DestroyWithoutSession(t *testing.T) {
	e := newTestServer(newTestManager(newMemorySessionStore()))

	rec := do(e, http.MethodGet, "/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSessionManager_DestroyStoreFailure(t *testing.T) {
	store := newMemorySessionStore()
	e := newTestServer(newTestManager(store))
	cookie := sessionCookie(t, do(e, http.MethodPost, "/login", nil))

	store.deleteErr = errors.New("redis down")

	rec := do(e, http.MethodGet, "/logout", cookie)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSessionManager_StartReplacesPreviousSession(t *testing.T) {
	store := newMemorySessionStore()
	e := newTestServer(newTestManager(store))

	first := sessionCookie(t, do(e, http.MethodPost, "/login", nil))
	second := sessionCookie(t, do(e, http.MethodPost, "/login", first))

	assert.NotEqual(t, first.Value, second.Value)
	assert.Len(t, store.sessions, 1)
}

func TestRequireSession(t *testing.T) {
	e := newTestServer(newTestManager(newMemorySessionStore()))

	rec := do(e, http.MethodGet, "/private", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, do(e, http.MethodPost, "/login", nil))
	rec = do(e, http.MethodGet, "/private", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secret", rec.Body.String())
}

func TestSessionTokenService_Issue(t *testing.T) {
	svc := NewSessionTokenService("k")

	signed, err := svc.Issue("sid-1", time.Minute)
	require.NoError(t, err)

	claims := new(jwt.RegisteredClaims)
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return svc.SigningKey(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.ID)
	assert.NotNil(t, claims.ExpiresAt)

	signed, err = svc.Issue("sid-2", 0)
	require.NoError(t, err)
	claims = new(jwt.RegisteredClaims)
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return svc.SigningKey(), nil
	})
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	_, ok := UserFromContext(ctx)
	assert.False(t, ok)

	_, ok = UserFromContext(WithSession(ctx, &Session{ID: "x"}))
	assert.False(t, ok, "session without user is anonymous")

	user, ok := UserFromContext(WithSession(ctx, &Session{ID: "x", User: &model.SessionUser{Name: "ana"}}))
	require.True(t, ok)
	assert.Equal(t, "ana", user.Name)

	_, ok = SessionFromContext(WithSession(ctx, nil))
	assert.False(t, ok)
}

func TestRedisSessionStore_UnavailableClient(t *testing.T) {
	store := NewRedisSessionStore(nil)
	ctx := context.Background()

	err := store.Save(ctx, &Session{ID: "a"}, time.Minute)
	assert.ErrorIs(t, err, cache.ErrUnavailable)

	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrUnavailable)

	assert.ErrorIs(t, store.Delete(ctx, "a"), cache.ErrUnavailable)
}

func TestSessionManager_ZeroTTLSessionDoesNotExpire(t *testing.T) {
	m := NewSessionManager(
		newMemorySessionStore(),
		NewSessionTokenService("test-secret"),
		CookieConfig{Name: testCookie},
		logging.New(io.Discard, "error"),
	)
	e := newTestServer(m)

	cookie := sessionCookie(t, do(e, http.MethodPost, "/login", nil))
	claims := new(jwt.RegisteredClaims)
	_, err := jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)

	rec := do(e, http.MethodGet, "/whoami", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}
