package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-web/config"
	"github.com/volunteerhub/volunteerhub-web/internal/models"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/jwt"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
	"github.com/volunteerhub/volunteerhub-web/pkg/metrics"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService owns the session lifecycle: it exchanges credentials for a
// backend bearer token, snapshots the profile, and signs both into one
// session cookie.
type AuthService struct {
	auth         AuthAPI
	config       *config.Config
	tokenManager *jwt.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(auth AuthAPI, cfg *config.Config) *AuthService {
	tokenManager := jwt.NewTokenManager(
		cfg.Session.JWTSecret,
		cfg.Session.JWTIssuer,
		cfg.Session.TTLHours,
	)

	return &AuthService{
		auth:         auth,
		config:       cfg,
		tokenManager: tokenManager,
	}
}

// Login exchanges credentials for a backend token, fetches the profile and
// returns a signed session cookie value. A profile fetch failure does not
// fail the login: the session is issued without a cached profile and role
// checks fall back to denying manager access.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*session.Profile, string, error) {
	token, err := s.auth.Login(ctx, hubapi.Credentials{
		Username: req.Email,
		Password: req.Password,
	})
	if err != nil {
		if hubapi.IsUnauthorized(err) {
			metrics.Logins.WithLabelValues("rejected").Inc()
			return nil, "", ErrInvalidCredentials
		}
		logger.Error("Login failed against backend", zap.Error(err))
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, "", apperrors.UpstreamError("login", err)
	}

	var profile *session.Profile
	profileCtx := session.NewContext(ctx, &session.Session{Token: token.AccessToken})
	volunteer, err := s.auth.Profile(profileCtx)
	if err != nil {
		// Degraded session: logged in, role unknown
		logger.Warn("Profile fetch after login failed, issuing session without cached profile",
			zap.Error(err))
	} else {
		profile = session.ProfileFromVolunteer(volunteer)
	}

	cookieToken, err := s.tokenManager.GenerateToken(token.AccessToken, profile)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err))
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, "", apperrors.InternalError("failed to create session")
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return profile, cookieToken, nil
}

// Register creates a new volunteer account. It does not log the account in;
// the frontend sends the user through the login flow afterwards.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*hubapi.Volunteer, error) {
	payload := req.ToCreate()

	volunteer, err := s.auth.Register(ctx, &payload)
	if err != nil {
		if hubapi.IsStatus(err, 400) || hubapi.IsStatus(err, 409) {
			metrics.Registrations.WithLabelValues("rejected").Inc()
			return nil, ErrEmailTaken
		}
		logger.Error("Registration failed against backend", zap.Error(err))
		metrics.Registrations.WithLabelValues("error").Inc()
		return nil, apperrors.UpstreamError("register", err)
	}

	metrics.Registrations.WithLabelValues("success").Inc()
	logger.Info("Volunteer registered", zap.Int("volunteer_id", volunteer.ID))
	return volunteer, nil
}

// GetSessionTTL returns the session TTL in seconds (for cookie max-age)
func (s *AuthService) GetSessionTTL() int {
	return s.config.Session.TTLHours * 3600
}

// GetCookieDomain returns the cookie domain
func (s *AuthService) GetCookieDomain() string {
	return s.config.Session.CookieDomain
}

// GetCookieSecure returns whether cookies should be secure
func (s *AuthService) GetCookieSecure() bool {
	return s.config.Session.CookieSecure
}

// GetTokenManager returns the JWT token manager
func (s *AuthService) GetTokenManager() *jwt.TokenManager {
	return s.tokenManager
}
