package models

import "time"

// Booking statuses. Only confirmed bookings block availability; cancelled and
// no-show bookings are filtered out before the engine runs.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "noshow"
)

// Booking is a confirmed reservation of one slot.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	OrgID         string    `bson:"orgId" json:"orgId"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	BookingTypeID string    `bson:"bookingTypeId" json:"bookingTypeId"`
	ClientName    string    `bson:"clientName" json:"clientName"`
	ClientEmail   string    `bson:"clientEmail" json:"clientEmail"`
	Start         time.Time `bson:"start" json:"start"`
	End           time.Time `bson:"end" json:"end"`
	Status        string    `bson:"status" json:"status"`
	InvoiceID     string    `bson:"invoiceId,omitempty" json:"invoiceId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	BookingTypeID string `json:"bookingTypeId" binding:"required"`
	Date          string `json:"date" binding:"required"`  // "2006-01-02" in the org timezone
	Start         string `json:"start" binding:"required"` // RFC 3339 instant, must match an offered slot exactly
	ClientName    string `json:"clientName" binding:"required"`
	ClientEmail   string `json:"clientEmail" binding:"required,email"`
}

// SlotResponse is one bookable slot serialized for the public API.
type SlotResponse struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}

// AvailabilityResponse is the public slot-query payload.
type AvailabilityResponse struct {
	OrgID         string         `json:"orgId"`
	BookingTypeID string         `json:"bookingTypeId"`
	Date          string         `json:"date"`
	Timezone      string         `json:"timezone"`
	Slots         []SlotResponse `json:"slots"`
}
