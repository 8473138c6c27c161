package services

import (
	"context"

	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
)

// Upstream client surfaces the services depend on. Satisfied by the hubapi
// resource clients; narrowed to interfaces so tests can stub the backend.

type AuthAPI interface {
	Register(ctx context.Context, input *hubapi.VolunteerCreate) (*hubapi.Volunteer, error)
	Login(ctx context.Context, creds hubapi.Credentials) (*hubapi.Token, error)
	Profile(ctx context.Context) (*hubapi.Volunteer, error)
}

type NeedsAPI interface {
	Create(ctx context.Context, input *hubapi.NeedCreate) (*hubapi.Need, error)
	List(ctx context.Context, page hubapi.Page) ([]hubapi.Need, error)
	Get(ctx context.Context, id int) (*hubapi.Need, error)
	Update(ctx context.Context, id int, input *hubapi.NeedCreate) (*hubapi.Need, error)
	Delete(ctx context.Context, id int) error
}

type VolunteersAPI interface {
	Create(ctx context.Context, input *hubapi.VolunteerCreate) (*hubapi.Volunteer, error)
	List(ctx context.Context, page hubapi.Page) ([]hubapi.Volunteer, error)
	Get(ctx context.Context, id int) (*hubapi.Volunteer, error)
	Update(ctx context.Context, id int, input *hubapi.VolunteerCreate) (*hubapi.Volunteer, error)
	Delete(ctx context.Context, id int) error
}

// AuthServiceInterface defines the interface for session lifecycle operations
type AuthServiceInterface interface {
	Login(ctx context.Context, req *models.LoginRequest) (*session.Profile, string, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*hubapi.Volunteer, error)
	GetSessionTTL() int
	GetCookieDomain() string
	GetCookieSecure() bool
	GetTokenManager() *jwt.TokenManager
}

// NeedsServiceInterface defines the interface for need operations. Mutation
// methods return the owner's freshly re-fetched needs so callers never serve
// a locally patched list.
type NeedsServiceInterface interface {
	Browse(ctx context.Context, page hubapi.Page) ([]hubapi.Need, error)
	GetNeed(ctx context.Context, id int) (*hubapi.Need, error)
	MyNeeds(ctx context.Context, ownerID int) ([]hubapi.Need, error)
	CreateNeed(ctx context.Context, ownerID int, form *models.NeedForm) ([]hubapi.Need, error)
	UpdateNeed(ctx context.Context, ownerID int, id int, form *models.NeedForm) ([]hubapi.Need, error)
	DeleteNeed(ctx context.Context, ownerID int, id int) ([]hubapi.Need, error)
}

// VolunteersServiceInterface defines the manager-facing roster operations
type VolunteersServiceInterface interface {
	CreateVolunteer(ctx context.Context, req *models.RegisterRequest) ([]hubapi.Volunteer, error)
	ListVolunteers(ctx context.Context, page hubapi.Page) ([]hubapi.Volunteer, error)
	GetVolunteer(ctx context.Context, id int) (*hubapi.Volunteer, error)
	UpdateVolunteer(ctx context.Context, id int, req *models.ProfileUpdateRequest) ([]hubapi.Volunteer, error)
	DeleteVolunteer(ctx context.Context, id int) ([]hubapi.Volunteer, error)
}

// ProfileServiceInterface defines the own-profile operations. UpdateProfile
// returns a re-signed session token so the cached profile in the cookie
// tracks the backend.
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context) (*hubapi.Volunteer, error)
	UpdateProfile(ctx context.Context, s *session.Session, req *models.ProfileUpdateRequest) (*hubapi.Volunteer, string, error)
}

// Ensure services implement their interfaces
var _ AuthServiceInterface = (*AuthService)(nil)
var _ NeedsServiceInterface = (*NeedsService)(nil)
var _ VolunteersServiceInterface = (*VolunteersService)(nil)
var _ ProfileServiceInterface = (*ProfileService)(nil)
