package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
)

// MockAuthService is a mock implementation of AuthServiceInterface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*session.Profile, string, error) {
	args := m.Called(ctx, req)
	var profile *session.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*session.Profile)
	}
	return profile, args.String(1), args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*hubapi.Volunteer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

func (m *MockAuthService) GetSessionTTL() int {
	return 86400
}

func (m *MockAuthService) GetCookieDomain() string {
	return ""
}

func (m *MockAuthService) GetCookieSecure() bool {
	return false
}

func (m *MockAuthService) GetTokenManager() *jwt.TokenManager {
	return jwt.NewTokenManager("test-secret", "volunteerhub-web", 24)
}

// MockNeedsService is a mock implementation of NeedsServiceInterface
type MockNeedsService struct {
	mock.Mock
}

func (m *MockNeedsService) Browse(ctx context.Context, page hubapi.Page) ([]hubapi.Need, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Need), args.Error(1)
}

func (m *MockNeedsService) GetNeed(ctx context.Context, id int) (*hubapi.Need, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Need), args.Error(1)
}

func (m *MockNeedsService) MyNeeds(ctx context.Context, ownerID int) ([]hubapi.Need, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Need), args.Error(1)
}

func (m *MockNeedsService) CreateNeed(ctx context.Context, ownerID int, form *models.NeedForm) ([]hubapi.Need, error) {
	args := m.Called(ctx, ownerID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Need), args.Error(1)
}

func (m *MockNeedsService) UpdateNeed(ctx context.Context, ownerID int, id int, form *models.NeedForm) ([]hubapi.Need, error) {
	args := m.Called(ctx, ownerID, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Need), args.Error(1)
}

func (m *MockNeedsService) DeleteNeed(ctx context.Context, ownerID int, id int) ([]hubapi.Need, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Need), args.Error(1)
}

// MockProfileService is a mock implementation of ProfileServiceInterface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context) (*hubapi.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, s *session.Session, req *models.ProfileUpdateRequest) (*hubapi.Volunteer, string, error) {
	args := m.Called(ctx, s, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*hubapi.Volunteer), args.String(1), args.Error(2)
}

// MockVolunteersService is a mock implementation of VolunteersServiceInterface
type MockVolunteersService struct {
	mock.Mock
}

func (m *MockVolunteersService) CreateVolunteer(ctx context.Context, req *models.RegisterRequest) ([]hubapi.Volunteer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersService) ListVolunteers(ctx context.Context, page hubapi.Page) ([]hubapi.Volunteer, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersService) GetVolunteer(ctx context.Context, id int) (*hubapi.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersService) UpdateVolunteer(ctx context.Context, id int, req *models.ProfileUpdateRequest) ([]hubapi.Volunteer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersService) DeleteVolunteer(ctx context.Context, id int) ([]hubapi.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Volunteer), args.Error(1)
}
