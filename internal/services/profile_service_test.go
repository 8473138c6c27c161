package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/services"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
)

func newProfileService(auth *MockAuthAPI, volunteers *MockVolunteersAPI) (*services.ProfileService, *jwt.TokenManager) {
	tm := jwt.NewTokenManager("test-secret", "volunteerhub-web", 24)
	return services.NewProfileService(auth, volunteers, tm), tm
}

func TestProfileService_GetProfile(t *testing.T) {
	mockAuth := new(MockAuthAPI)
	service, _ := newProfileService(mockAuth, new(MockVolunteersAPI))
	ctx := context.Background()

	mockAuth.On("Profile", ctx).Return(&hubapi.Volunteer{
		ID: 7, Name: "Pat", Email: "pat@example.com",
	}, nil).Once()

	volunteer, err := service.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, volunteer.ID)
}

func TestProfileService_GetProfile_Unauthorized(t *testing.T) {
	mockAuth := new(MockAuthAPI)
	service, _ := newProfileService(mockAuth, new(MockVolunteersAPI))
	ctx := context.Background()

	mockAuth.On("Profile", ctx).Return(nil, &hubapi.APIError{
		Operation:  "getProfile",
		StatusCode: http.StatusUnauthorized,
	}).Once()

	_, err := service.GetProfile(ctx)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestProfileService_UpdateProfile_RefreshesSessionToken(t *testing.T) {
	mockAuth := new(MockAuthAPI)
	mockVolunteers := new(MockVolunteersAPI)
	service, tm := newProfileService(mockAuth, mockVolunteers)
	ctx := context.Background()

	current := &hubapi.Volunteer{ID: 7, Name: "Pat", Email: "pat@example.com"}
	updated := &hubapi.Volunteer{ID: 7, Name: "Patricia", Email: "pat@example.com", IsActive: true}

	mockAuth.On("Profile", ctx).Return(current, nil).Once()
	mockVolunteers.On("Update", ctx, 7, mock.MatchedBy(func(input *hubapi.VolunteerCreate) bool {
		// Blank password means keep the current one; it must stay off the wire
		return input.Name == "Patricia" && input.Password == ""
	})).Return(updated, nil).Once()
	mockAuth.On("Profile", ctx).Return(updated, nil).Once()

	sess := &session.Session{Token: "upstream-tok", Profile: &session.Profile{ID: 7, Name: "Pat"}}
	got, cookieToken, err := service.UpdateProfile(ctx, sess, &models.ProfileUpdateRequest{
		Name:  "Patricia",
		Email: "pat@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Patricia", got.Name)

	// The re-signed cookie carries the refreshed profile snapshot
	claims, err := tm.ValidateToken(cookieToken)
	require.NoError(t, err)
	assert.Equal(t, "upstream-tok", claims.UpstreamToken)
	refreshed := session.FromClaims(claims)
	require.NotNil(t, refreshed.Profile)
	assert.Equal(t, "Patricia", refreshed.Profile.Name)

	mockAuth.AssertExpectations(t)
	mockVolunteers.AssertExpectations(t)
}

func TestProfileService_UpdateProfile_RefetchFailureServesWrite(t *testing.T) {
	mockAuth := new(MockAuthAPI)
	mockVolunteers := new(MockVolunteersAPI)
	service, _ := newProfileService(mockAuth, mockVolunteers)
	ctx := context.Background()

	current := &hubapi.Volunteer{ID: 7, Name: "Pat", Email: "pat@example.com"}

	mockAuth.On("Profile", ctx).Return(current, nil).Once()
	mockVolunteers.On("Update", ctx, 7, mock.Anything).Return(current, nil).Once()
	mockAuth.On("Profile", ctx).Return(nil, errors.New("connection reset")).Once()

	sess := &session.Session{Token: "upstream-tok"}
	got, cookieToken, err := service.UpdateProfile(ctx, sess, &models.ProfileUpdateRequest{
		Name:  "Pat",
		Email: "pat@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.NotEmpty(t, cookieToken)
}
