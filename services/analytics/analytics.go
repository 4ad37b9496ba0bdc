package analytics

import (
	"strings"
	"time"

	"morisbiz/models"
)

// dateKey returns today's YYYY-MM-DD key.
func (s *DefaultAnalyticsService) dateKey() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Format(models.DateKeyLayout)
}

// sanitizeKey makes a path or action safe to use as a Mongo map key.
// Dots and dollar signs are reserved in field paths.
var keySanitizer = strings.NewReplacer(".", "_", "$", "_")

func sanitizeKey(key string) string {
	return keySanitizer.Replace(key)
}

// RecordPageView bumps today's total and per-path counters. The underlying
// write is a single atomic increment, so concurrent visitors on the same
// day and path all count.
func (s *DefaultAnalyticsService) RecordPageView(path string) error {
	if path == "" {
		path = "/"
	}
	return s.Repo.IncrementPageView(s.dateKey(), sanitizeKey(path))
}

// RecordAdminClick bumps today's counter for one admin action. The counter
// key combines the action and the admin's identity.
func (s *DefaultAnalyticsService) RecordAdminClick(action, adminID string) error {
	key := sanitizeKey(action + "_" + adminID)
	return s.Repo.IncrementAdminClick(s.dateKey(), key)
}

// TotalViews sums the total counter across all daily records ever created.
func (s *DefaultAnalyticsService) TotalViews() (int64, error) {
	return s.Repo.TotalViews()
}

// Range returns the daily records between two YYYY-MM-DD dates inclusive.
func (s *DefaultAnalyticsService) Range(start, end string) ([]models.DailyAnalytics, error) {
	if _, err := time.Parse(models.DateKeyLayout, start); err != nil {
		return nil, models.NewValidationError("start", "expected YYYY-MM-DD")
	}
	if _, err := time.Parse(models.DateKeyLayout, end); err != nil {
		return nil, models.NewValidationError("end", "expected YYYY-MM-DD")
	}
	return s.Repo.Range(start, end)
}
