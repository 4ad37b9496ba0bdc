package handlers

import (
	"net/http"

	"morisbiz/models"
	"morisbiz/services/analytics"
	"morisbiz/services/directory"
	"morisbiz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler serves the public business catalog endpoints.
type BusinessHandler struct {
	Directory directory.DirectoryService
	Analytics analytics.AnalyticsService
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(dir directory.DirectoryService, an analytics.AnalyticsService) *BusinessHandler {
	return &BusinessHandler{Directory: dir, Analytics: an}
}

// ListBusinessesHandler handles GET /api/businesses. Public listings only
// ever show approved entries. A store failure degrades to an empty list
// with a notice instead of failing the page.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	criteria := models.BusinessCriteria{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Status:   models.StatusApproved,
		SortBy:   models.SortKey(c.Query("sortBy")),
	}

	businesses, err := h.Directory.ListBusinesses(criteria)
	if err != nil {
		utils.GetLogger().Error("Failed to list businesses", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"businesses": []models.Business{},
			"notice":     "Listings are temporarily unavailable. Please try again shortly.",
		})
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// SearchBusinessesHandler handles GET /api/businesses/search?q=.
func (h *BusinessHandler) SearchBusinessesHandler(c *gin.Context) {
	term := c.Query("q")
	businesses, err := h.Directory.SearchBusinesses(term)
	if err != nil {
		utils.GetLogger().Error("Business search failed", zap.String("term", term), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"businesses": []models.Business{},
			"notice":     "Search is temporarily unavailable. Please try again shortly.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// FeaturedBusinessesHandler handles GET /api/businesses/featured.
func (h *BusinessHandler) FeaturedBusinessesHandler(c *gin.Context) {
	businesses, err := h.Directory.FeaturedBusinesses(6)
	if err != nil {
		utils.GetLogger().Error("Failed to load featured businesses", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"businesses": []models.Business{}})
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// GetBusinessHandler handles GET /api/businesses/:id. Viewing a listing
// bumps its counter and today's page views; neither write blocks the
// response.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Directory.ViewBusiness(id)
	if err != nil {
		utils.RespondError(c, "Failed to load business", err)
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	go func() {
		if err := h.Analytics.RecordPageView("/business/" + id); err != nil {
			utils.GetLogger().Warn("failed to record page view", zap.Error(err))
		}
	}()

	c.JSON(http.StatusOK, b)
}

// CreateBusinessHandler handles POST /api/businesses. A validation failure
// blocks the submission and reports the reason.
func (h *BusinessHandler) CreateBusinessHandler(c *gin.Context) {
	var b models.Business
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Directory.CreateBusiness(&b)
	if err != nil {
		utils.RespondError(c, "Could not submit business", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Business submitted for approval"})
}

// AddReviewHandler handles POST /api/businesses/:id/reviews.
func (h *BusinessHandler) AddReviewHandler(c *gin.Context) {
	id := c.Param("id")
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Directory.AddReview(id, review); err != nil {
		utils.RespondError(c, "Could not add review", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}
