package models

import "github.com/volunteerhub/volunteerhub-web/pkg/hubapi"

// ProfileUpdateRequest represents the edit-profile form. Password is
// optional: when omitted the backend keeps the current one.
type ProfileUpdateRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	Email              string `json:"email" binding:"required,email,max=255"`
	Password           string `json:"password" binding:"omitempty,min=8,max=255"`
	Phone              string `json:"phone" binding:"max=50"`
	AboutMe            string `json:"about_me" binding:"max=5000"`
	Skills             string `json:"skills" binding:"max=2000"`
	VolunteerInterests string `json:"volunteer_interests" binding:"max=2000"`
	Location           string `json:"location" binding:"max=255"`
	Availability       string `json:"availability" binding:"max=2000"`
}

// ToCreate converts the form into the backend volunteer payload
func (r *ProfileUpdateRequest) ToCreate() hubapi.VolunteerCreate {
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

// VolunteerListResponse returns the manager roster view
type VolunteerListResponse struct {
	Volunteers []hubapi.Volunteer `json:"volunteers"`
	Total      int                `json:"total"`
}

// VolunteerResponse returns a single volunteer
type VolunteerResponse struct {
	Volunteer *hubapi.Volunteer `json:"volunteer"`
}
