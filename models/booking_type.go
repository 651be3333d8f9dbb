package models

// BookingType is a bookable service an organisation offers, e.g. a 30-minute
// consultation. Durations are whole minutes; slot boundaries never have
// fractional-minute precision.
type BookingType struct {
	ID             string  `bson:"id" json:"id"`
	OrgID          string  `bson:"orgId" json:"orgId"`
	ProviderID     string  `bson:"providerId" json:"providerId"`
	Name           string  `bson:"name" json:"name"`
	DurationMins   int     `bson:"durationMins" json:"durationMins"`
	BufferMins     int     `bson:"bufferMins" json:"bufferMins"`         // idle time after each booking
	MinNoticeMins  int     `bson:"minNoticeMins" json:"minNoticeMins"`   // shortest lead time before a slot start
	Price          float64 `bson:"price,omitempty" json:"price,omitempty"`
	Currency       string  `bson:"currency,omitempty" json:"currency,omitempty"`
	InvoiceEnabled bool    `bson:"invoiceEnabled" json:"invoiceEnabled"`
}
