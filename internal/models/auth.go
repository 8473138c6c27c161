package models

import (
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
)

// LoginRequest represents a login form submission
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

// RegisterRequest represents a registration form submission. Optional
// fields submitted empty are dropped before the payload goes upstream.
type RegisterRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	Email              string `json:"email" binding:"required,email,max=255"`
	Password           string `json:"password" binding:"required,min=8,max=255"`
	Phone              string `json:"phone" binding:"max=50"`
	AboutMe            string `json:"about_me" binding:"max=5000"`
	Skills             string `json:"skills" binding:"max=2000"`
	VolunteerInterests string `json:"volunteer_interests" binding:"max=2000"`
	Location           string `json:"location" binding:"max=255"`
	Availability       string `json:"availability" binding:"max=2000"`
}

// ToCreate converts the form into the backend registration payload
func (r *RegisterRequest) ToCreate() hubapi.VolunteerCreate {
	return hubapi.VolunteerCreate{
		Name:               r.Name,
		Email:              r.Email,
		Password:           r.Password,
		Phone:              hubapi.Optional(r.Phone),
		AboutMe:            hubapi.Optional(r.AboutMe),
		Skills:             hubapi.Optional(r.Skills),
		VolunteerInterests: hubapi.Optional(r.VolunteerInterests),
		Location:           hubapi.Optional(r.Location),
		Availability:       hubapi.Optional(r.Availability),
	}
}

// SessionResponse describes the current session to the frontend
type SessionResponse struct {
	LoggedIn bool             `json:"loggedIn"`
	Profile  *session.Profile `json:"profile,omitempty"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Success bool             `json:"success"`
	Profile *session.Profile `json:"profile,omitempty"`
}
