package handlers

import (
	"net/http"
	"strconv"

	"morisbiz/models"
	"morisbiz/services/realestate"
	"morisbiz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler serves the public real estate endpoints.
type PropertyHandler struct {
	RealEstate realestate.RealEstateService
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc realestate.RealEstateService) *PropertyHandler {
	return &PropertyHandler{RealEstate: svc}
}

// ListPropertiesHandler handles GET /api/properties with type, location,
// price and band filters. Public listings only show approved entries.
func (h *PropertyHandler) ListPropertiesHandler(c *gin.Context) {
	criteria := models.PropertyCriteria{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Status:   models.StatusApproved,
		Band:     models.PriceBand(c.Query("band")),
		SortBy:   models.SortNewest,
	}
	if v := c.Query("priceMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMin = f
		}
	}
	if v := c.Query("priceMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMax = f
		}
	}

	properties, err := h.RealEstate.ListProperties(criteria)
	if err != nil {
		if models.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to list properties", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"properties": []models.Property{},
			"notice":     "Listings are temporarily unavailable. Please try again shortly.",
		})
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GetPropertyHandler handles GET /api/properties/:id.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.RealEstate.GetProperty(id)
	if err != nil {
		utils.RespondError(c, "Failed to load property", err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePropertyHandler handles POST /api/properties.
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	var p models.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.RealEstate.CreateProperty(&p)
	if err != nil {
		utils.RespondError(c, "Could not submit property", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Property submitted for approval"})
}
