package hubapi

// Types mirror the volunteer-matching backend API wire format. Optional
// free-text fields are pointers so that "absent" and "empty string" stay
// distinct on the wire.

// Volunteer is a registered person, optionally holding the manager role.
type Volunteer struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone,omitempty"`
	AboutMe            *string `json:"about_me,omitempty"`
	Skills             *string `json:"skills,omitempty"`
	VolunteerInterests *string `json:"volunteer_interests,omitempty"`
	Location           *string `json:"location,omitempty"`
	Availability       *string `json:"availability,omitempty"`
	IsActive           bool    `json:"is_active"`
	IsManager          bool    `json:"is_manager"`
}

// VolunteerCreate is the payload for registration, volunteer creation and
// volunteer updates. Password is omitted on updates that keep the current
// one.
type VolunteerCreate struct {
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Password           string  `json:"password,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	AboutMe            *string `json:"about_me,omitempty"`
	Skills             *string `json:"skills,omitempty"`
	VolunteerInterests *string `json:"volunteer_interests,omitempty"`
	Location           *string `json:"location,omitempty"`
	Availability       *string `json:"availability,omitempty"`
}

// NeedFormat is the delivery format of a need.
type NeedFormat string

const (
	FormatInPerson NeedFormat = "in-person"
	FormatVirtual  NeedFormat = "virtual"
)

// NeedCreate is the payload for creating or updating a need.
type NeedCreate struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	RequiredTasks       *string    `json:"required_tasks,omitempty"`
	RequiredSkills      *string    `json:"required_skills,omitempty"`
	NumVolunteersNeeded int        `json:"num_volunteers_needed"`
	Format              NeedFormat `json:"format"`
	LocationDetails     *string    `json:"location_details,omitempty"`
	ContactName         string     `json:"contact_name"`
	ContactEmail        string     `json:"contact_email"`
	ContactPhone        *string    `json:"contact_phone,omitempty"`
}

// Need is a volunteer opportunity posted by a volunteer.
type Need struct {
	ID                  int        `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	RequiredTasks       *string    `json:"required_tasks,omitempty"`
	RequiredSkills      *string    `json:"required_skills,omitempty"`
	NumVolunteersNeeded int        `json:"num_volunteers_needed"`
	Format              NeedFormat `json:"format"`
	LocationDetails     *string    `json:"location_details,omitempty"`
	ContactName         string     `json:"contact_name"`
	ContactEmail        string     `json:"contact_email"`
	ContactPhone        *string    `json:"contact_phone,omitempty"`
	OwnerID             int        `json:"owner_id"`
	Owner               *Volunteer `json:"owner,omitempty"`
}

// Token is the credential material returned by the login endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Credentials are the login form fields. Username carries the email.
type Credentials struct {
	Username string
	Password string
}

// Page selects a window of a list endpoint.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns the backend's default pagination window.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: 100}
}

// Optional normalizes a form value: empty strings become absent, not "".
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
