package session

import (
	"context"
	"encoding/json"

	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
)

// Profile is the denormalized copy of the current volunteer cached in the
// session cookie. It exists primarily so role checks don't need a round
// trip; it may go stale and is never authoritative beyond view gating.
type Profile struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsManager bool   `json:"is_manager"`
	IsActive  bool   `json:"is_active"`
}

// Session is the client-held authentication state: the upstream bearer
// token plus the cached profile. A nil Profile is the degraded
// "logged in, unknown role" mode; role checks on it fail closed.
type Session struct {
	Token   string
	Profile *Profile
}

// LoggedIn reports whether the session carries a bearer token. Token
// presence is what "logged in" means for UI purposes.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// IsManager reports whether the cached profile grants manager access.
// Unknown role means no.
func (s *Session) IsManager() bool {
	return s != nil && s.Profile != nil && s.Profile.IsManager
}

// FromClaims rebuilds a session from validated cookie claims. A malformed
// profile claim degrades to a nil profile instead of failing the session.
func FromClaims(claims *jwt.SessionClaims) *Session {
	s := &Session{Token: claims.UpstreamToken}
	if len(claims.Profile) > 0 {
		var profile Profile
		if err := json.Unmarshal(claims.Profile, &profile); err == nil {
			s.Profile = &profile
		}
	}
	return s
}

// ProfileFromVolunteer caches the role-relevant slice of a volunteer.
func ProfileFromVolunteer(v *hubapi.Volunteer) *Profile {
	if v == nil {
		return nil
	}
	return &Profile{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		IsManager: v.IsManager,
		IsActive:  v.IsActive,
	}
}

type contextKey struct{}

// NewContext attaches the session to ctx.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session placed in ctx by the session middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// ContextTokenSource resolves the bearer token from the request context so
// the backend API client always sees the current session's credential.
func ContextTokenSource() hubapi.TokenSource {
	return hubapi.TokenSourceFunc(func(ctx context.Context) (string, bool) {
		s, ok := FromContext(ctx)
		if !ok || !s.LoggedIn() {
			return "", false
		}
		return s.Token, true
	})
}
