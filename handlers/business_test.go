package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"morisbiz/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDirectory lets each test pin the service outcome without a store.
type stubDirectory struct {
	businesses []models.Business
	business   *models.Business
	createdID  string
	err        error
}

func (s *stubDirectory) ListBusinesses(models.BusinessCriteria) ([]models.Business, error) {
	return s.businesses, s.err
}
func (s *stubDirectory) SearchBusinesses(string) ([]models.Business, error) {
	return s.businesses, s.err
}
func (s *stubDirectory) GetBusiness(string) (*models.Business, error) { return s.business, s.err }
func (s *stubDirectory) ViewBusiness(string) (*models.Business, error) { return s.business, s.err }
func (s *stubDirectory) CreateBusiness(*models.Business) (string, error) {
	return s.createdID, s.err
}
func (s *stubDirectory) UpdateBusiness(string, models.BusinessUpdate) error { return s.err }
func (s *stubDirectory) AddReview(string, models.Review) error              { return s.err }
func (s *stubDirectory) FeaturedBusinesses(int64) ([]models.Business, error) {
	return s.businesses, s.err
}

type stubAnalytics struct{}

func (stubAnalytics) RecordPageView(string) error { return nil }
func (stubAnalytics) RecordAdminClick(string, string) error { return nil }
func (stubAnalytics) TotalViews() (int64, error) { return 0, nil }
func (stubAnalytics) Range(string, string) ([]models.DailyAnalytics, error) {
	return nil, nil
}

func newBusinessRouter(dir *stubDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBusinessHandler(dir, stubAnalytics{})
	r := gin.New()
	r.GET("/api/businesses", h.ListBusinessesHandler)
	r.GET("/api/businesses/:id", h.GetBusinessHandler)
	r.POST("/api/businesses", h.CreateBusinessHandler)
	return r
}

func TestListBusinessesDegradesOnStoreFailure(t *testing.T) {
	r := newBusinessRouter(&stubDirectory{err: &models.StoreUnavailableError{Op: "list"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses", nil)
	r.ServeHTTP(w, req)

	// Public pages render with an empty catalog rather than an error page.
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Businesses []models.Business `json:"businesses"`
		Notice     string            `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Businesses)
	assert.NotEmpty(t, body.Notice)
}

func TestGetBusinessNotFound(t *testing.T) {
	r := newBusinessRouter(&stubDirectory{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBusinessValidationMaps400(t *testing.T) {
	r := newBusinessRouter(&stubDirectory{err: models.NewValidationError("email", "required")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses",
		strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBusinessSucceeds(t *testing.T) {
	r := newBusinessRouter(&stubDirectory{createdID: "abc-123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses",
		strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
}
