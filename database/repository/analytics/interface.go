package analyticsRepo

import (
	"morisbiz/models"
)

// AnalyticsRepository defines access to the per-day analytics documents.
// Both increment operations are atomic upserts: the day's document is
// created on first use and counters bump in place, so concurrent writers
// never lose an update.
type AnalyticsRepository interface {
	IncrementPageView(date, pathKey string) error
	IncrementAdminClick(date, actionKey string) error
	// Range retrieves daily records with date keys in [start, end].
	Range(start, end string) ([]models.DailyAnalytics, error)
	// TotalViews sums the total counter across every daily record.
	TotalViews() (int64, error)
}
