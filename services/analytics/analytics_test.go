package analytics

import (
	"sync"
	"testing"
	"time"

	"morisbiz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnalyticsRepo mirrors the store's upsert semantics: a day's record
// appears on its first increment and counters bump in place. The mutex makes
// it safe for the concurrency test.
type fakeAnalyticsRepo struct {
	mu   sync.Mutex
	days map[string]*models.DailyAnalytics
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{days: make(map[string]*models.DailyAnalytics)}
}

func (f *fakeAnalyticsRepo) day(date string) *models.DailyAnalytics {
	d, ok := f.days[date]
	if !ok {
		d = &models.DailyAnalytics{
			Date:        date,
			PageViews:   make(map[string]int64),
			AdminClicks: make(map[string]int64),
			CreatedAt:   time.Now(),
		}
		f.days[date] = d
	}
	return d
}

func (f *fakeAnalyticsRepo) IncrementPageView(date, pathKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.day(date)
	d.TotalViews++
	d.PageViews[pathKey]++
	d.LastUpdated = time.Now()
	return nil
}

func (f *fakeAnalyticsRepo) IncrementAdminClick(date, actionKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.day(date)
	d.AdminClicks[actionKey]++
	d.LastUpdated = time.Now()
	return nil
}

func (f *fakeAnalyticsRepo) Range(start, end string) ([]models.DailyAnalytics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DailyAnalytics
	for date, d := range f.days {
		if date >= start && date <= end {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) TotalViews() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, d := range f.days {
		total += d.TotalViews
	}
	return total, nil
}

func fixedClock(date string) func() time.Time {
	ts, _ := time.Parse(models.DateKeyLayout, date)
	return func() time.Time { return ts }
}

func TestRecordPageViewUsesDateKey(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := &DefaultAnalyticsService{Repo: repo, Now: fixedClock("2026-03-15")}

	require.NoError(t, svc.RecordPageView("/businesses"))

	d, ok := repo.days["2026-03-15"]
	require.True(t, ok, "the daily record is keyed by calendar date")
	assert.Equal(t, int64(1), d.TotalViews)
	assert.Equal(t, int64(1), d.PageViews["/businesses"])
}

func TestRecordPageViewDefaultsPath(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := &DefaultAnalyticsService{Repo: repo, Now: fixedClock("2026-03-15")}

	require.NoError(t, svc.RecordPageView(""))
	assert.Equal(t, int64(1), repo.days["2026-03-15"].PageViews["/"])
}

func TestRecordPageViewSanitizesKey(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := &DefaultAnalyticsService{Repo: repo, Now: fixedClock("2026-03-15")}

	require.NoError(t, svc.RecordPageView("/index.html"))

	// Dots cannot be used in document field paths.
	d := repo.days["2026-03-15"]
	assert.Equal(t, int64(1), d.PageViews["/index_html"])
	assert.NotContains(t, d.PageViews, "/index.html")
}

func TestConcurrentPageViewsAllCount(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := &DefaultAnalyticsService{Repo: repo, Now: fixedClock("2026-03-15")}

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = svc.RecordPageView("/businesses")
		}()
	}
	wg.Wait()

	d := repo.days["2026-03-15"]
	assert.Equal(t, int64(n), d.TotalViews)
	assert.Equal(t, int64(n), d.PageViews["/businesses"])
}

func TestRecordAdminClickCompositeKey(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := &DefaultAnalyticsService{Repo: repo, Now: fixedClock("2026-03-15")}

	require.NoError(t, svc.RecordAdminClick("approve_business", "admin"))
	require.NoError(t, svc.RecordAdminClick("approve_business", "admin"))

	d := repo.days["2026-03-15"]
	assert.Equal(t, int64(2), d.AdminClicks["approve_business_admin"])
}

func TestRangeValidatesDates(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := &DefaultAnalyticsService{Repo: repo}

	_, err := svc.Range("15-03-2026", "2026-03-20")
	assert.True(t, models.IsValidation(err))

	_, err = svc.Range("2026-03-15", "not-a-date")
	assert.True(t, models.IsValidation(err))
}

func TestRangeReturnsDaysInclusive(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := &DefaultAnalyticsService{Repo: repo}

	for _, date := range []string{"2026-03-14", "2026-03-15", "2026-03-16", "2026-03-17"} {
		require.NoError(t, repo.IncrementPageView(date, "/"))
	}

	got, err := svc.Range("2026-03-15", "2026-03-16")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDistributionBy(t *testing.T) {
	businesses := []models.Business{
		{Category: "Contractors"},
		{Category: "Contractors"},
		{Category: "Materials"},
		{Category: ""},
	}

	dist := DistributionBy(businesses, func(b models.Business) string { return b.Category })
	assert.Equal(t, map[string]int{"Contractors": 2, "Materials": 1}, dist)
}
