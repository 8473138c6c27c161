package hubapi

import (
	"context"
	"net/http"
	"net/url"
)

// AuthClient covers registration, login and the caller's own profile.
type AuthClient struct {
	c *Client
}

// Register creates a new volunteer account. No session is issued; the
// caller signs in separately.
func (a *AuthClient) Register(ctx context.Context, input *VolunteerCreate) (*Volunteer, error) {
	var created Volunteer
	if err := a.c.doJSON(ctx, "register", http.MethodPost, "/register", nil, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Login exchanges credentials for bearer token material. The backend
// expects a URL-encoded form with the email in the username field.
func (a *AuthClient) Login(ctx context.Context, creds Credentials) (*Token, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var token Token
	if err := a.c.doForm(ctx, "login", http.MethodPost, "/login", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Profile fetches the authenticated caller's volunteer profile.
func (a *AuthClient) Profile(ctx context.Context) (*Volunteer, error) {
	var profile Volunteer
	if err := a.c.doJSON(ctx, "getProfile", http.MethodGet, "/volunteers/me/", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
