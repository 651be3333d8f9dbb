package handlers

import (
	"errors"
	"net/http"
	"time"

	"slotwise/models"
	"slotwise/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and management.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/orgs/:orgID/bookings. A 409 means the
// chosen slot is gone and the client should pick another time.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.Param("orgID")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), orgID, req)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
			return
		}
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			return
		}
		logger.Error("failed to create booking", zap.String("orgId", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CancelBooking handles DELETE /api/bookings/:bookingID (authenticated).
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.GetString("orgID")
	bookingID := c.Param("bookingID")

	if err := h.Service.CancelBooking(c.Request.Context(), orgID, bookingID); err != nil {
		logger.Error("failed to cancel booking", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetBooking handles GET /api/bookings/:bookingID (authenticated).
func (h *BookingHandler) GetBooking(c *gin.Context) {
	orgID := c.GetString("orgID")
	bookingID := c.Param("bookingID")

	b, err := h.Service.GetBooking(c.Request.Context(), orgID, bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings handles GET /api/dashboard/bookings?from=...&to=... (authenticated).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	logger := getLogger(c)
	orgID := c.GetString("orgID")

	from, err := time.Parse(time.RFC3339, c.DefaultQuery("from", time.Now().Format(time.RFC3339)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' instant, want RFC 3339"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.DefaultQuery("to", from.AddDate(0, 1, 0).Format(time.RFC3339)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' instant, want RFC 3339"})
		return
	}

	bookings, err := h.Service.ListBookings(c.Request.Context(), orgID, from, to)
	if err != nil {
		logger.Error("failed to list bookings", zap.String("orgId", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
