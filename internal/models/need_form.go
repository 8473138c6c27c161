package models

import "github.com/volunteerhub/volunteerhub-web/pkg/hubapi"

// NeedForm represents the create/edit form for a volunteer need. Required
// fields mirror the backend contract; optional free-text fields submitted
// empty are dropped, not sent as "".
type NeedForm struct {
	Title               string `json:"title" binding:"required,max=200"`
	Description         string `json:"description" binding:"required,max=10000"`
	RequiredTasks       string `json:"required_tasks" binding:"max=5000"`
	RequiredSkills      string `json:"required_skills" binding:"max=5000"`
	NumVolunteersNeeded int    `json:"num_volunteers_needed" binding:"required,min=1"`
	Format              string `json:"format" binding:"required,oneof=in-person virtual"`
	LocationDetails     string `json:"location_details" binding:"max=2000"`
	ContactName         string `json:"contact_name" binding:"required,max=100"`
	ContactEmail        string `json:"contact_email" binding:"required,email,max=255"`
	ContactPhone        string `json:"contact_phone" binding:"max=50"`
}

// ToCreate converts the form into the backend need payload
func (f *NeedForm) ToCreate() hubapi.NeedCreate {
	return hubapi.NeedCreate{
		Title:               f.Title,
		Description:         f.Description,
		RequiredTasks:       hubapi.Optional(f.RequiredTasks),
		RequiredSkills:      hubapi.Optional(f.RequiredSkills),
		NumVolunteersNeeded: f.NumVolunteersNeeded,
		Format:              hubapi.NeedFormat(f.Format),
		LocationDetails:     hubapi.Optional(f.LocationDetails),
		ContactName:         f.ContactName,
		ContactEmail:        f.ContactEmail,
		ContactPhone:        hubapi.Optional(f.ContactPhone),
	}
}

// FromNeed pre-fills an edit form from an existing need
func FromNeed(n *hubapi.Need) NeedForm {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return NeedForm{
		Title:               n.Title,
		Description:         n.Description,
		RequiredTasks:       deref(n.RequiredTasks),
		RequiredSkills:      deref(n.RequiredSkills),
		NumVolunteersNeeded: n.NumVolunteersNeeded,
		Format:              string(n.Format),
		LocationDetails:     deref(n.LocationDetails),
		ContactName:         n.ContactName,
		ContactEmail:        n.ContactEmail,
		ContactPhone:        deref(n.ContactPhone),
	}
}

// NeedListResponse returns a list of needs. Mutation endpoints respond
// with the freshly re-fetched list so the client never renders stale data.
type NeedListResponse struct {
	Needs []hubapi.Need `json:"needs"`
	Total int           `json:"total"`
}

// NeedResponse returns a single need
type NeedResponse struct {
	Need *hubapi.Need `json:"need"`
}
