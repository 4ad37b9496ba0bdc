package models

import "time"

// DateKeyLayout is the calendar-date format keying daily analytics documents.
const DateKeyLayout = "2006-01-02"

// DailyAnalytics aggregates one calendar day of traffic. Exactly one document
// exists per date, created lazily on the first event of that day.
type DailyAnalytics struct {
	Date        string           `bson:"_id" json:"date"` // YYYY-MM-DD
	TotalViews  int64            `bson:"totalViews" json:"totalViews"`
	PageViews   map[string]int64 `bson:"pageViews" json:"pageViews"`
	AdminClicks map[string]int64 `bson:"adminClicks" json:"adminClicks"`
	CreatedAt   time.Time        `bson:"createdAt" json:"createdAt"`
	LastUpdated time.Time        `bson:"lastUpdated" json:"lastUpdated"`
}

// DashboardStats is the admin dashboard snapshot, computed by scanning the
// business and property collections.
type DashboardStats struct {
	TotalBusinesses      int              `json:"totalBusinesses"`
	ApprovedBusinesses   int              `json:"approvedBusinesses"`
	PendingBusinesses    int              `json:"pendingBusinesses"`
	TotalBusinessViews   int64            `json:"totalBusinessViews"`
	TotalProperties      int              `json:"totalProperties"`
	PendingProperties    int              `json:"pendingProperties"`
	TotalSiteViews       int64            `json:"totalSiteViews"`
	CategoryDistribution map[string]int   `json:"categoryDistribution"`
	LocationDistribution map[string]int   `json:"locationDistribution"`
	GeneratedAt          time.Time        `json:"generatedAt"`
}
