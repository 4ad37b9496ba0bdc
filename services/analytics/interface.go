package analytics

import (
	"time"

	analyticsRepo "morisbiz/database/repository/analytics"
	"morisbiz/models"
)

// AnalyticsService tracks site traffic and admin activity in per-day
// records and answers the dashboard's aggregate questions.
type AnalyticsService interface {
	// RecordPageView bumps today's total and per-path counters.
	RecordPageView(path string) error
	// RecordAdminClick bumps today's counter for one admin action,
	// keyed by action and admin identity.
	RecordAdminClick(action, adminID string) error
	// TotalViews sums the total counter across all daily records.
	TotalViews() (int64, error)
	// Range returns the daily records between two YYYY-MM-DD dates.
	Range(start, end string) ([]models.DailyAnalytics, error)
}

// DefaultAnalyticsService is the production implementation. Now is
// injectable so tests can pin the date key.
type DefaultAnalyticsService struct {
	Repo analyticsRepo.AnalyticsRepository
	Now  func() time.Time
}
