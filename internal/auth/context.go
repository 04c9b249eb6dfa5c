package auth

import (
	"context"

	"labadmin/internal/model"
)

// Session is the server-side record behind a session cookie.
type Session struct {
	ID   string             `json:"-"`
	User *model.SessionUser `json:"user,omitempty"`
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the request's session, if one was loaded.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// UserFromContext returns the logged-in user, if any.
func UserFromContext(ctx context.Context) (*model.SessionUser, bool) {
	s, ok := SessionFromContext(ctx)
	if !ok || s.User == nil {
		return nil, false
	}
	return s.User, true
}
