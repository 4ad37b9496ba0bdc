package admin

import (
	"context"
	"encoding/json"
	"time"

	"morisbiz/models"
	"morisbiz/services/analytics"
	"morisbiz/utils"

	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardStats computes the admin dashboard snapshot by scanning both
// collections. The result is cached briefly in Redis; the snapshot being up
// to a minute stale is acceptable for a dashboard.
func (s *DefaultAdminService) DashboardStats() (*models.DashboardStats, error) {
	if cached := s.cachedStats(); cached != nil {
		return cached, nil
	}

	businesses, err := s.Businesses.GetAll()
	if err != nil {
		return nil, err
	}
	properties, err := s.Properties.GetAll()
	if err != nil {
		return nil, err
	}
	siteViews, err := s.Analytics.TotalViews()
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalBusinesses: len(businesses),
		TotalProperties: len(properties),
		TotalSiteViews:  siteViews,
		GeneratedAt:     time.Now(),
	}
	for _, b := range businesses {
		switch b.Status {
		case models.StatusApproved:
			stats.ApprovedBusinesses++
		case models.StatusPending:
			stats.PendingBusinesses++
		}
		stats.TotalBusinessViews += b.Views
	}
	for _, p := range properties {
		if p.Status == models.StatusPending {
			stats.PendingProperties++
		}
	}
	stats.CategoryDistribution = analytics.DistributionBy(businesses,
		func(b models.Business) string { return b.Category })
	stats.LocationDistribution = analytics.DistributionBy(businesses,
		func(b models.Business) string { return b.Location })

	s.storeStats(stats)
	return stats, nil
}

func (s *DefaultAdminService) cachedStats() *models.DashboardStats {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var stats models.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *DefaultAdminService) storeStats(stats *models.DashboardStats) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache dashboard stats", zap.Error(err))
	}
}
