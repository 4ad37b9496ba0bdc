package handlers

import (
	"net/http"

	"morisbiz/models"
	"morisbiz/services/admin"
	"morisbiz/services/analytics"
	"morisbiz/services/contact"
	"morisbiz/services/directory"
	"morisbiz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the moderation panel endpoints. Authorization is
// established by the admin middleware before any of these run.
type AdminHandler struct {
	Admin     admin.AdminService
	Directory directory.DirectoryService
	Contact   contact.ContactService
	Analytics analytics.AnalyticsService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(adm admin.AdminService, dir directory.DirectoryService, con contact.ContactService, an analytics.AnalyticsService) *AdminHandler {
	return &AdminHandler{Admin: adm, Directory: dir, Contact: con, Analytics: an}
}

// recordClick counts an admin action for the activity dashboard without
// blocking the request.
func (h *AdminHandler) recordClick(c *gin.Context, action string) {
	adminID := c.GetString("adminID")
	go func() {
		if err := h.Analytics.RecordAdminClick(action, adminID); err != nil {
			utils.GetLogger().Warn("failed to record admin click",
				zap.String("action", action), zap.Error(err))
		}
	}()
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Admin.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListBusinessesHandler handles GET /api/admin/businesses. Unlike the
// public listing it exposes every approval state.
func (h *AdminHandler) ListBusinessesHandler(c *gin.Context) {
	criteria := models.BusinessCriteria{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Status:   models.ApprovalStatus(c.Query("status")),
	}
	businesses, err := h.Admin.ListBusinesses(criteria)
	if err != nil {
		utils.RespondError(c, "Failed to list businesses", err)
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// ApproveBusinessHandler handles PUT /api/admin/businesses/:id/approve.
func (h *AdminHandler) ApproveBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Admin.ApproveBusiness(id); err != nil {
		utils.RespondError(c, "Could not approve business", err)
		return
	}
	h.recordClick(c, "approve_business")
	c.JSON(http.StatusOK, gin.H{"message": "Business approved"})
}

// RejectBusinessHandler handles PUT /api/admin/businesses/:id/reject.
func (h *AdminHandler) RejectBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.Admin.RejectBusiness(id, req.Reason); err != nil {
		utils.RespondError(c, "Could not reject business", err)
		return
	}
	h.recordClick(c, "reject_business")
	c.JSON(http.StatusOK, gin.H{"message": "Business rejected"})
}

// UpdateBusinessHandler handles PUT /api/admin/businesses/:id.
func (h *AdminHandler) UpdateBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	var upd models.BusinessUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Directory.UpdateBusiness(id, upd); err != nil {
		utils.RespondError(c, "Could not update business", err)
		return
	}
	h.recordClick(c, "update_business")
	c.JSON(http.StatusOK, gin.H{"message": "Business updated"})
}

// DeleteBusinessHandler handles DELETE /api/admin/businesses/:id.
func (h *AdminHandler) DeleteBusinessHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Admin.DeleteBusiness(id); err != nil {
		utils.RespondError(c, "Could not delete business", err)
		return
	}
	h.recordClick(c, "delete_business")
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted"})
}

// ListPropertiesHandler handles GET /api/admin/properties.
func (h *AdminHandler) ListPropertiesHandler(c *gin.Context) {
	criteria := models.PropertyCriteria{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Status:   models.ApprovalStatus(c.Query("status")),
	}
	properties, err := h.Admin.ListProperties(criteria)
	if err != nil {
		utils.RespondError(c, "Failed to list properties", err)
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// ApprovePropertyHandler handles PUT /api/admin/properties/:id/approve.
func (h *AdminHandler) ApprovePropertyHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Admin.ApproveProperty(id); err != nil {
		utils.RespondError(c, "Could not approve property", err)
		return
	}
	h.recordClick(c, "approve_property")
	c.JSON(http.StatusOK, gin.H{"message": "Property approved"})
}

// RejectPropertyHandler handles PUT /api/admin/properties/:id/reject.
func (h *AdminHandler) RejectPropertyHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.Admin.RejectProperty(id, req.Reason); err != nil {
		utils.RespondError(c, "Could not reject property", err)
		return
	}
	h.recordClick(c, "reject_property")
	c.JSON(http.StatusOK, gin.H{"message": "Property rejected"})
}

// DeletePropertyHandler handles DELETE /api/admin/properties/:id.
func (h *AdminHandler) DeletePropertyHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Admin.DeleteProperty(id); err != nil {
		utils.RespondError(c, "Could not delete property", err)
		return
	}
	h.recordClick(c, "delete_property")
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// ListContactSubmissionsHandler handles GET /api/admin/contact-submissions.
func (h *AdminHandler) ListContactSubmissionsHandler(c *gin.Context) {
	submissions, err := h.Contact.ListSubmissions()
	if err != nil {
		utils.RespondError(c, "Failed to list contact submissions", err)
		return
	}
	if submissions == nil {
		submissions = []models.ContactSubmission{}
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// MarkSubmissionReadHandler handles PUT /api/admin/contact-submissions/:id/read.
func (h *AdminHandler) MarkSubmissionReadHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Contact.MarkAsRead(id); err != nil {
		utils.RespondError(c, "Could not mark submission as read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission marked as read"})
}

// DashboardHandler handles GET /api/admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := h.Admin.DashboardStats()
	if err != nil {
		utils.RespondError(c, "Failed to compute dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AnalyticsRangeHandler handles GET /api/admin/analytics?start=&end=.
func (h *AdminHandler) AnalyticsRangeHandler(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	records, err := h.Analytics.Range(start, end)
	if err != nil {
		utils.RespondError(c, "Failed to load analytics", err)
		return
	}
	if records == nil {
		records = []models.DailyAnalytics{}
	}
	c.JSON(http.StatusOK, gin.H{"analytics": records})
}

// ImportCompaniesHandler handles POST /api/admin/import with a batch of
// company records.
func (h *AdminHandler) ImportCompaniesHandler(c *gin.Context) {
	var req struct {
		Companies []models.Business `json:"companies" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.Admin.BulkImport(req.Companies)
	h.recordClick(c, "import_companies")
	c.JSON(http.StatusOK, result)
}
