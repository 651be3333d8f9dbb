package handlers

import (
	"errors"
	"net/http"
	"time"

	"slotwise/services/availability"
	"slotwise/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the public slot query.
type AvailabilityHandler struct {
	Service booking.AvailabilityService
}

func NewAvailabilityHandler(svc booking.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetSlots handles GET /api/orgs/:orgID/booking-types/:typeID/slots?date=YYYY-MM-DD.
// Malformed dates are rejected here, before any orchestration runs.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.Param("orgID")
	typeID := c.Param("typeID")

	date := c.Query("date")
	if _, err := time.Parse(availability.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing date, want YYYY-MM-DD"})
		return
	}

	resp, err := h.Service.GetAvailableSlots(c.Request.Context(), orgID, typeID, date)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			return
		}
		logger.Error("failed to compute availability",
			zap.String("orgId", orgID), zap.String("bookingTypeId", typeID),
			zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
