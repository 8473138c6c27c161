package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
)

// MockAuthAPI is a mock implementation of AuthAPI
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Register(ctx context.Context, input *hubapi.VolunteerCreate) (*hubapi.Volunteer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

func (m *MockAuthAPI) Login(ctx context.Context, creds hubapi.Credentials) (*hubapi.Token, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Token), args.Error(1)
}

func (m *MockAuthAPI) Profile(ctx context.Context) (*hubapi.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

// MockNeedsAPI is a mock implementation of NeedsAPI
type MockNeedsAPI struct {
	mock.Mock
}

func (m *MockNeedsAPI) Create(ctx context.Context, input *hubapi.NeedCreate) (*hubapi.Need, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Need), args.Error(1)
}

func (m *MockNeedsAPI) List(ctx context.Context, page hubapi.Page) ([]hubapi.Need, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Need), args.Error(1)
}

func (m *MockNeedsAPI) Get(ctx context.Context, id int) (*hubapi.Need, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Need), args.Error(1)
}

func (m *MockNeedsAPI) Update(ctx context.Context, id int, input *hubapi.NeedCreate) (*hubapi.Need, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Need), args.Error(1)
}

func (m *MockNeedsAPI) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVolunteersAPI is a mock implementation of VolunteersAPI
type MockVolunteersAPI struct {
	mock.Mock
}

func (m *MockVolunteersAPI) Create(ctx context.Context, input *hubapi.VolunteerCreate) (*hubapi.Volunteer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersAPI) List(ctx context.Context, page hubapi.Page) ([]hubapi.Volunteer, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersAPI) Get(ctx context.Context, id int) (*hubapi.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersAPI) Update(ctx context.Context, id int, input *hubapi.VolunteerCreate) (*hubapi.Volunteer, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubapi.Volunteer), args.Error(1)
}

func (m *MockVolunteersAPI) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
