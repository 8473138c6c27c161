package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
	"github.com/volunteerhub/volunteerhub-web/pkg/metrics"
)

// ProfileService handles the logged-in volunteer's own profile. Updates
// re-sign the session cookie so the cached profile never drifts from the
// backend copy.
type ProfileService struct {
	auth         AuthAPI
	volunteers   VolunteersAPI
	tokenManager *jwt.TokenManager
}

// NewProfileService creates a new ProfileService
func NewProfileService(auth AuthAPI, volunteers VolunteersAPI, tokenManager *jwt.TokenManager) *ProfileService {
	return &ProfileService{
		auth:         auth,
		volunteers:   volunteers,
		tokenManager: tokenManager,
	}
}

// GetProfile fetches the caller's full profile from the backend
func (s *ProfileService) GetProfile(ctx context.Context) (*hubapi.Volunteer, error) {
	volunteer, err := s.auth.Profile(ctx)
	if err != nil {
		if hubapi.IsUnauthorized(err) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to fetch profile", zap.Error(err))
		return nil, apperrors.UpstreamError("get profile", err)
	}
	return volunteer, nil
}

// UpdateProfile writes the profile upstream, then re-fetches it and signs a
// fresh session token carrying the updated snapshot. The volunteer id comes
// from the backend profile, not the cookie, so a degraded session (no cached
// profile) can still update itself.
func (s *ProfileService) UpdateProfile(ctx context.Context, sess *session.Session, req *models.ProfileUpdateRequest) (*hubapi.Volunteer, string, error) {
	current, err := s.GetProfile(ctx)
	if err != nil {
		metrics.ProfileUpdates.WithLabelValues("error").Inc()
		return nil, "", err
	}

	payload := req.ToCreate()
	if _, err := s.volunteers.Update(ctx, current.ID, &payload); err != nil {
		metrics.ProfileUpdates.WithLabelValues("error").Inc()
		logger.Error("Failed to update profile",
			zap.Int("volunteer_id", current.ID), zap.Error(err))
		return nil, "", apperrors.UpstreamError("update profile", err)
	}

	updated, err := s.auth.Profile(ctx)
	if err != nil {
		// The write succeeded; serve the stale read rather than failing
		logger.Warn("Profile re-fetch after update failed",
			zap.Int("volunteer_id", current.ID), zap.Error(err))
		updated = current
	}

	cookieToken, err := s.tokenManager.GenerateToken(sess.Token, session.ProfileFromVolunteer(updated))
	if err != nil {
		metrics.ProfileUpdates.WithLabelValues("error").Inc()
		logger.Error("Failed to re-sign session token", zap.Error(err))
		return nil, "", apperrors.InternalError("failed to refresh session")
	}

	metrics.ProfileUpdates.WithLabelValues("success").Inc()
	logger.Info("Profile updated", zap.Int("volunteer_id", updated.ID))
	return updated, cookieToken, nil
}
