package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/volunteerhub/volunteerhub-web/internal/middleware"
	"github.com/volunteerhub/volunteerhub-web/internal/services"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	apperrors "github.com/volunteerhub/volunteerhub-web/pkg/errors"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
)

func withSession(s *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionContextKey, s)
		c.Next()
	}
}

func testSession() *session.Session {
	return &session.Session{
		Token:   "upstream-tok",
		Profile: &session.Profile{ID: 5, Name: "Pat", Email: "pat@example.com"},
	}
}

const validNeedJSON = `{
	"title": "Community garden help",
	"description": "Weeding and planting",
	"num_volunteers_needed": 3,
	"format": "in-person",
	"contact_name": "Alex",
	"contact_email": "alex@example.com"
}`

func TestNeedsHandler_Browse(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.GET("/needs", handler.Browse)

	mockNeeds.On("Browse", mock.Anything, hubapi.DefaultPage()).
		Return([]hubapi.Need{{ID: 1, Title: "Garden"}}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/needs", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), "Garden")
}

func TestNeedsHandler_Browse_PaginationFromQuery(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.GET("/needs", handler.Browse)

	mockNeeds.On("Browse", mock.Anything, hubapi.Page{Skip: 20, Limit: 10}).
		Return([]hubapi.Need{}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/needs?skip=20&limit=10", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	mockNeeds.AssertExpectations(t)
}

func TestNeedsHandler_Browse_UpstreamFailure(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.GET("/needs", handler.Browse)

	mockNeeds.On("Browse", mock.Anything, mock.Anything).
		Return(nil, apperrors.UpstreamError("list needs", assert.AnError)).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/needs", http.NoBody))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	// Static resource-scoped message; the raw error stays server-side
	assert.JSONEq(t, `{"error":"Failed to load needs"}`, w.Body.String())
}

func TestNeedsHandler_CreateNeed_ReturnsRefreshedList(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.POST("/needs", withSession(testSession()), handler.CreateNeed)

	mockNeeds.On("CreateNeed", mock.Anything, 5, mock.Anything).
		Return([]hubapi.Need{{ID: 10, Title: "Community garden help", OwnerID: 5}}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/needs", strings.NewReader(validNeedJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	mockNeeds.AssertExpectations(t)
}

func TestNeedsHandler_CreateNeed_InvalidFormat(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.POST("/needs", withSession(testSession()), handler.CreateNeed)

	body := strings.Replace(validNeedJSON, "in-person", "carrier-pigeon", 1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/needs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
	mockNeeds.AssertNotCalled(t, "CreateNeed")
}

func TestNeedsHandler_CreateNeed_NoSession(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.POST("/needs", handler.CreateNeed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/needs", strings.NewReader(validNeedJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockNeeds.AssertNotCalled(t, "CreateNeed")
}

func TestNeedsHandler_CreateNeed_DegradedSessionResolvesOwner(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	mockProfile := new(MockProfileService)
	handler := NewNeedsHandler(mockNeeds, mockProfile, new(MockAuthService))
	router := gin.New()
	// Session without a cached profile: owner id comes from the backend
	router.POST("/needs", withSession(&session.Session{Token: "upstream-tok"}), handler.CreateNeed)

	mockProfile.On("GetProfile", mock.Anything).
		Return(&hubapi.Volunteer{ID: 9, Name: "Pat"}, nil).Once()
	mockNeeds.On("CreateNeed", mock.Anything, 9, mock.Anything).
		Return([]hubapi.Need{{ID: 11, OwnerID: 9}}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/needs", strings.NewReader(validNeedJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockProfile.AssertExpectations(t)
	mockNeeds.AssertExpectations(t)
}

func TestNeedsHandler_CreateNeed_StaleTokenClearsCookie(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	mockProfile := new(MockProfileService)
	handler := NewNeedsHandler(mockNeeds, mockProfile, new(MockAuthService))
	router := gin.New()
	router.POST("/needs", withSession(&session.Session{Token: "stale-tok"}), handler.CreateNeed)

	mockProfile.On("GetProfile", mock.Anything).
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/needs", strings.NewReader(validNeedJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
	mockNeeds.AssertNotCalled(t, "CreateNeed")
}

func TestNeedsHandler_UpdateNeed_NotOwner(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.PUT("/needs/:id", withSession(testSession()), handler.UpdateNeed)

	mockNeeds.On("UpdateNeed", mock.Anything, 5, 3, mock.Anything).
		Return(nil, services.ErrNotNeedOwner).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/needs/3", strings.NewReader(validNeedJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "your own needs")
}

func TestNeedsHandler_DeleteNeed_NotFound(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.DELETE("/needs/:id", withSession(testSession()), handler.DeleteNeed)

	mockNeeds.On("DeleteNeed", mock.Anything, 5, 404).
		Return(nil, apperrors.NotFoundError("need")).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/needs/404", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Need not found")
}

func TestNeedsHandler_MyNeeds(t *testing.T) {
	mockNeeds := new(MockNeedsService)
	handler := NewNeedsHandler(mockNeeds, new(MockProfileService), new(MockAuthService))
	router := gin.New()
	router.GET("/my/needs", withSession(testSession()), handler.MyNeeds)

	mockNeeds.On("MyNeeds", mock.Anything, 5).
		Return([]hubapi.Need{{ID: 1, OwnerID: 5}, {ID: 2, OwnerID: 5}}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/my/needs", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total":2`)
}
