package models

// BookingTaskPayload is the asynq payload for booking email jobs. It carries
// identifiers only; the worker re-reads current state at send time so a
// cancellation between enqueue and delivery is respected.
type BookingTaskPayload struct {
	BookingID string `json:"bookingId"`
	OrgID     string `json:"orgId"`
}
