package admin

import (
	"sort"
	"testing"
	"time"

	"morisbiz/config"
	"morisbiz/models"
	"morisbiz/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// In-memory repositories mirroring the store's documented semantics. The
// approval guard and idempotent delete live here so moderation flows can be
// exercised end to end.

type fakeBusinessRepo struct {
	byID  map[string]*models.Business
	order []string
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{byID: make(map[string]*models.Business)}
}

func (f *fakeBusinessRepo) Create(b *models.Business) (string, error) {
	now := time.Now()
	b.ID = uuid.NewString()
	b.Status = models.StatusPending
	b.Rating = 0
	b.Views = 0
	b.Reviews = []models.Review{}
	b.CreatedAt = now
	b.UpdatedAt = now

	clone := *b
	f.byID[b.ID] = &clone
	f.order = append(f.order, b.ID)
	return b.ID, nil
}

func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBusinessRepo) GetAll() ([]models.Business, error) {
	var out []models.Business
	for _, id := range f.order {
		out = append(out, *f.byID[id])
	}
	return out, nil
}

func (f *fakeBusinessRepo) FindByNameAndEmail(name, email string) (*models.Business, error) {
	for _, id := range f.order {
		b := f.byID[id]
		if b.Name == name && b.Email == email {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeBusinessRepo) List(criteria models.BusinessCriteria) ([]models.Business, error) {
	var out []models.Business
	for _, id := range f.order {
		b := f.byID[id]
		if criteria.Category != "" && b.Category != criteria.Category {
			continue
		}
		if criteria.Location != "" && b.Location != criteria.Location {
			continue
		}
		if criteria.Status != "" && b.Status != criteria.Status {
			continue
		}
		out = append(out, *b)
	}
	if criteria.SortBy == models.SortNewest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	if criteria.Limit > 0 && int64(len(out)) > criteria.Limit {
		out = out[:criteria.Limit]
	}
	return out, nil
}

func (f *fakeBusinessRepo) Update(id string, upd models.BusinessUpdate) error {
	b, ok := f.byID[id]
	if !ok {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	if upd.Name != nil {
		b.Name = *upd.Name
	}
	if upd.Description != nil {
		b.Description = *upd.Description
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBusinessRepo) SetApprovalState(id string, state models.ApprovalStatus, reason string) error {
	b, ok := f.byID[id]
	if !ok {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	if b.Status == state {
		return nil
	}
	if b.Status != models.StatusPending {
		return &models.InvalidTransitionError{From: b.Status, To: state}
	}
	b.Status = state
	if state == models.StatusRejected {
		b.RejectionReason = reason
	}
	return nil
}

func (f *fakeBusinessRepo) Delete(id string) error {
	delete(f.byID, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBusinessRepo) IncrementViews(id string) error {
	b, ok := f.byID[id]
	if !ok {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	b.Views++
	return nil
}

func (f *fakeBusinessRepo) AddReview(id string, review models.Review, newRating float64) error {
	b, ok := f.byID[id]
	if !ok {
		return &models.NotFoundError{Entity: "business", ID: id}
	}
	b.Reviews = append(b.Reviews, review)
	b.Rating = newRating
	return nil
}

type fakePropertyRepo struct {
	byID map[string]*models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{byID: make(map[string]*models.Property)}
}

func (f *fakePropertyRepo) Create(p *models.Property) (string, error) {
	p.ID = uuid.NewString()
	p.Status = models.StatusPending
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	clone := *p
	f.byID[p.ID] = &clone
	return p.ID, nil
}

func (f *fakePropertyRepo) GetByID(id string) (*models.Property, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakePropertyRepo) GetAll() ([]models.Property, error) {
	var out []models.Property
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePropertyRepo) List(criteria models.PropertyCriteria) ([]models.Property, error) {
	var out []models.Property
	for _, p := range f.byID {
		if criteria.Status != "" && p.Status != criteria.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePropertyRepo) Update(id string, fields map[string]interface{}) error {
	if _, ok := f.byID[id]; !ok {
		return &models.NotFoundError{Entity: "property", ID: id}
	}
	return nil
}

func (f *fakePropertyRepo) SetApprovalState(id string, state models.ApprovalStatus, reason string) error {
	p, ok := f.byID[id]
	if !ok {
		return &models.NotFoundError{Entity: "property", ID: id}
	}
	if p.Status == state {
		return nil
	}
	if p.Status != models.StatusPending {
		return &models.InvalidTransitionError{From: p.Status, To: state}
	}
	p.Status = state
	if state == models.StatusRejected {
		p.RejectionReason = reason
	}
	return nil
}

func (f *fakePropertyRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type fakeAnalyticsRepo struct {
	total int64
}

func (f *fakeAnalyticsRepo) IncrementPageView(date, pathKey string) error {
	f.total++
	return nil
}

func (f *fakeAnalyticsRepo) IncrementAdminClick(date, actionKey string) error { return nil }

func (f *fakeAnalyticsRepo) Range(start, end string) ([]models.DailyAnalytics, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) TotalViews() (int64, error) { return f.total, nil }

func newService() (*DefaultAdminService, *fakeBusinessRepo, *fakePropertyRepo, *fakeAnalyticsRepo) {
	businesses := newFakeBusinessRepo()
	properties := newFakePropertyRepo()
	analytics := &fakeAnalyticsRepo{}
	svc := &DefaultAdminService{
		Businesses: businesses,
		Properties: properties,
		Analytics:  analytics,
	}
	return svc, businesses, properties, analytics
}

func seedBusiness(t *testing.T, repo *fakeBusinessRepo, name string) string {
	t.Helper()
	id, err := repo.Create(&models.Business{
		Name:     name,
		Email:    name + "@example.com",
		Category: "Contractors",
		Location: "Port Louis",
	})
	require.NoError(t, err)
	return id
}

func TestApproveBusinessRoundTrip(t *testing.T) {
	svc, businesses, _, _ := newService()
	id := seedBusiness(t, businesses, "Acme")

	require.NoError(t, svc.ApproveBusiness(id))

	approved, err := svc.ListBusinesses(models.BusinessCriteria{Status: models.StatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, id, approved[0].ID)

	pending, err := svc.ListBusinesses(models.BusinessCriteria{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRejectBusinessKeepsReason(t *testing.T) {
	svc, businesses, _, _ := newService()
	id := seedBusiness(t, businesses, "Acme")

	require.NoError(t, svc.RejectBusiness(id, "incomplete profile"))

	b, err := businesses.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, b.Status)
	assert.Equal(t, "incomplete profile", b.RejectionReason)
}

func TestApprovalTransitionGuard(t *testing.T) {
	svc, businesses, _, _ := newService()
	id := seedBusiness(t, businesses, "Acme")

	require.NoError(t, svc.ApproveBusiness(id))

	// Once decided, the state can't flip.
	err := svc.RejectBusiness(id, "changed my mind")
	assert.True(t, models.IsInvalidTransition(err))

	// Re-applying the same state stays a no-op.
	assert.NoError(t, svc.ApproveBusiness(id))

	err = svc.ApproveBusiness("missing")
	assert.True(t, models.IsNotFound(err))
}

func TestDeleteBusinessIdempotent(t *testing.T) {
	svc, businesses, _, _ := newService()
	id := seedBusiness(t, businesses, "Acme")

	require.NoError(t, svc.DeleteBusiness(id))
	require.NoError(t, svc.DeleteBusiness(id))

	b, err := businesses.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestListBusinessesDefaultsNewestFirst(t *testing.T) {
	svc, businesses, _, _ := newService()

	first := seedBusiness(t, businesses, "First")
	businesses.byID[first].CreatedAt = time.Now().Add(-time.Hour)
	second := seedBusiness(t, businesses, "Second")

	got, err := svc.ListBusinesses(models.BusinessCriteria{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second, got[0].ID)
}

func TestListBusinessesRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newService()

	_, err := svc.ListBusinesses(models.BusinessCriteria{Status: "archived"})
	assert.True(t, models.IsValidation(err))
}

func TestPropertyModeration(t *testing.T) {
	svc, _, properties, _ := newService()

	id, err := properties.Create(&models.Property{Title: "Flat", Type: models.PropertySale, Price: 100000, Location: "Curepipe"})
	require.NoError(t, err)

	require.NoError(t, svc.ApproveProperty(id))
	err = svc.RejectProperty(id, "duplicate")
	assert.True(t, models.IsInvalidTransition(err))

	require.NoError(t, svc.DeleteProperty(id))
	require.NoError(t, svc.DeleteProperty(id))
}

func TestImportCompanyDeduplicates(t *testing.T) {
	svc, businesses, _, _ := newService()

	id, err := svc.ImportCompany(&models.Business{Name: "Acme", Email: "acme@example.com", Category: "Contractors"})
	require.NoError(t, err)

	b, err := businesses.GetByID(id)
	require.NoError(t, err)
	assert.True(t, b.Imported)
	assert.Equal(t, models.StatusPending, b.Status)

	_, err = svc.ImportCompany(&models.Business{Name: "Acme", Email: "acme@example.com"})
	var dup *DuplicateCompanyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Acme", dup.Name)
}

func TestBulkImportCollectsFailures(t *testing.T) {
	svc, _, _, _ := newService()

	result := svc.BulkImport([]models.Business{
		{Name: "Acme", Email: "acme@example.com"},
		{Name: "Acme", Email: "acme@example.com"}, // duplicate of the first
		{Name: "", Email: ""},                     // missing dedupe keys
		{Name: "Beta", Email: "beta@example.com"},
	})

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Acme", result.Errors[0].Company)
}

func TestDashboardStats(t *testing.T) {
	svc, businesses, properties, analytics := newService()

	a := seedBusiness(t, businesses, "Acme")
	require.NoError(t, svc.ApproveBusiness(a))
	businesses.byID[a].Views = 10
	b := seedBusiness(t, businesses, "Beta")
	businesses.byID[b].Views = 3
	businesses.byID[b].Location = "Curepipe"

	_, err := properties.Create(&models.Property{Title: "Flat", Type: models.PropertySale, Price: 100000, Location: "Curepipe"})
	require.NoError(t, err)
	analytics.total = 42

	stats, err := svc.DashboardStats()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalBusinesses)
	assert.Equal(t, 1, stats.ApprovedBusinesses)
	assert.Equal(t, 1, stats.PendingBusinesses)
	assert.Equal(t, int64(13), stats.TotalBusinessViews)
	assert.Equal(t, 1, stats.TotalProperties)
	assert.Equal(t, 1, stats.PendingProperties)
	assert.Equal(t, int64(42), stats.TotalSiteViews)
	assert.Equal(t, map[string]int{"Contractors": 2}, stats.CategoryDistribution)
	assert.Equal(t, map[string]int{"Port Louis": 1, "Curepipe": 1}, stats.LocationDistribution)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	prev := config.AppConfig
	config.AppConfig.AdminEmail = "admin@example.com"
	config.AppConfig.AdminPasswordHash = string(hash)
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig = prev })

	svc, _, _, _ := newService()

	token, err := svc.Authenticate("admin@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims["email"])

	_, err = svc.Authenticate("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("someone@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
