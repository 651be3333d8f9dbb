package handlers

import (
	"net/http"
	"time"

	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/models"
	"slotwise/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the dashboard's schedule management endpoints.
type ScheduleHandler struct {
	Repo scheduleRepo.ScheduleRepository
}

func NewScheduleHandler(repo scheduleRepo.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo}
}

// validClockPair rejects the degenerate ranges the engine would silently
// treat as zero availability; the dashboard should hear about them instead.
func validClockPair(startClock, endClock string) bool {
	sh, sm, err := availability.ParseClock(startClock)
	if err != nil {
		return false
	}
	eh, em, err := availability.ParseClock(endClock)
	if err != nil {
		return false
	}
	return eh*60+em > sh*60+sm
}

// ReplaceWorkingHours handles PUT /api/dashboard/providers/:providerID/working-hours.
func (h *ScheduleHandler) ReplaceWorkingHours(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.GetString("orgID")
	providerID := c.Param("providerID")

	var input struct {
		Slots []models.WorkingHourSlot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	for _, slot := range input.Slots {
		if slot.Weekday < 0 || slot.Weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be 0 (Sunday) through 6 (Saturday)"})
			return
		}
		if !validClockPair(slot.StartClock, slot.EndClock) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endClock must be a valid HH:MM after startClock"})
			return
		}
	}

	if err := h.Repo.ReplaceWorkingHours(c.Request.Context(), orgID, providerID, input.Slots); err != nil {
		logger.Error("failed to replace working hours",
			zap.String("providerId", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save working hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// CreateOverride handles POST /api/dashboard/providers/:providerID/overrides.
func (h *ScheduleHandler) CreateOverride(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.GetString("orgID")
	providerID := c.Param("providerID")

	var ov models.Override
	if err := c.ShouldBindJSON(&ov); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if ov.Kind != models.OverrideAvailable && ov.Kind != models.OverrideBlocked {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'available' or 'blocked'"})
		return
	}
	if _, err := time.Parse(availability.DateLayout, ov.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}
	if !validClockPair(ov.StartClock, ov.EndClock) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endClock must be a valid HH:MM after startClock"})
		return
	}

	ov.OrgID = orgID
	ov.ProviderID = providerID
	if err := h.Repo.CreateOverride(c.Request.Context(), &ov); err != nil {
		logger.Error("failed to create override", zap.String("providerId", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save override"})
		return
	}
	c.JSON(http.StatusCreated, ov)
}

// DeleteOverride handles DELETE /api/dashboard/overrides/:overrideID.
func (h *ScheduleHandler) DeleteOverride(c *gin.Context) {
	orgID := c.GetString("orgID")
	overrideID := c.Param("overrideID")

	if err := h.Repo.DeleteOverride(c.Request.Context(), orgID, overrideID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "override not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateRecurringOverride handles POST /api/dashboard/providers/:providerID/recurring-overrides.
func (h *ScheduleHandler) CreateRecurringOverride(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.GetString("orgID")
	providerID := c.Param("providerID")

	var ov models.RecurringOverride
	if err := c.ShouldBindJSON(&ov); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if ov.Kind != models.OverrideAvailable && ov.Kind != models.OverrideBlocked {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'available' or 'blocked'"})
		return
	}
	if !validClockPair(ov.StartClock, ov.EndClock) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endClock must be a valid HH:MM after startClock"})
		return
	}

	ov.OrgID = orgID
	ov.ProviderID = providerID
	if err := h.Repo.CreateRecurringOverride(c.Request.Context(), &ov); err != nil {
		logger.Error("failed to create recurring override",
			zap.String("providerId", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recurring override"})
		return
	}
	c.JSON(http.StatusCreated, ov)
}
