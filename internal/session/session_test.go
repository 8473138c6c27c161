package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
)

func TestSession_LoggedInAndRole(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.LoggedIn())
	assert.False(t, nilSession.IsManager())

	tokenOnly := &Session{Token: "tok"}
	assert.True(t, tokenOnly.LoggedIn())
	assert.False(t, tokenOnly.IsManager(), "unknown role is not a manager")

	manager := &Session{Token: "tok", Profile: &Profile{IsManager: true}}
	assert.True(t, manager.IsManager())
}

func TestFromClaims_RoundTrip(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "volunteerhub-web", 1)

	cookie, err := tm.GenerateToken("upstream-tok", &Profile{
		ID:        3,
		Name:      "Sam",
		Email:     "sam@example.com",
		IsManager: true,
		IsActive:  true,
	})
	require.NoError(t, err)

	claims, err := tm.ValidateToken(cookie)
	require.NoError(t, err)

	s := FromClaims(claims)
	assert.Equal(t, "upstream-tok", s.Token)
	require.NotNil(t, s.Profile)
	assert.Equal(t, "Sam", s.Profile.Name)
	assert.True(t, s.IsManager())
}

func TestFromClaims_NoProfileDegradesToUnknownRole(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "volunteerhub-web", 1)

	cookie, err := tm.GenerateToken("upstream-tok", nil)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(cookie)
	require.NoError(t, err)

	s := FromClaims(claims)
	assert.True(t, s.LoggedIn())
	assert.Nil(t, s.Profile)
	assert.False(t, s.IsManager())
}

func TestFromClaims_MalformedProfileFailsSoft(t *testing.T) {
	claims := &jwt.SessionClaims{
		UpstreamToken: "upstream-tok",
		Profile:       json.RawMessage(`"not an object"`),
	}

	s := FromClaims(claims)
	assert.True(t, s.LoggedIn())
	assert.Nil(t, s.Profile, "malformed cached profile reads as absent")
	assert.False(t, s.IsManager())
}

func TestContextTokenSource(t *testing.T) {
	source := ContextTokenSource()

	_, ok := source.Token(context.Background())
	assert.False(t, ok, "no session means no credential")

	ctx := NewContext(context.Background(), &Session{Token: "tok"})
	token, ok := source.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	ctx = NewContext(context.Background(), &Session{})
	_, ok = source.Token(ctx)
	assert.False(t, ok, "empty token means unauthenticated")
}

func TestProfileFromVolunteer(t *testing.T) {
	assert.Nil(t, ProfileFromVolunteer(nil))

	p := ProfileFromVolunteer(&hubapi.Volunteer{
		ID:        5,
		Name:      "Dana",
		Email:     "dana@example.com",
		IsManager: true,
		IsActive:  true,
	})
	require.NotNil(t, p)
	assert.Equal(t, 5, p.ID)
	assert.True(t, p.IsManager)
}
