package models

import "time"

// WorkingHourSlot is one recurring open interval in a provider's weekly
// schedule. A provider may have several slots on the same weekday (split
// schedules); overlaps between them are resolved when availability is
// computed.
type WorkingHourSlot struct {
	ID         string       `bson:"id" json:"id"`
	OrgID      string       `bson:"orgId" json:"orgId"`
	ProviderID string       `bson:"providerId" json:"providerId"`
	Weekday    time.Weekday `bson:"weekday" json:"weekday"`
	StartClock string       `bson:"startClock" json:"startClock"` // "HH:MM" wall-clock in the org timezone
	EndClock   string       `bson:"endClock" json:"endClock"`     // "HH:MM", must be after StartClock
}

// OverrideKind tags a schedule override as opening or closing time.
type OverrideKind string

const (
	OverrideAvailable OverrideKind = "available" // opens time, possibly outside working hours
	OverrideBlocked   OverrideKind = "blocked"   // closes time regardless of source
)

// Override is a date-specific exception to a provider's working hours.
// Recurring override definitions are expanded into these upstream; by the
// time availability is computed an Override always targets exactly one date.
type Override struct {
	ID         string       `bson:"id" json:"id"`
	OrgID      string       `bson:"orgId" json:"orgId"`
	ProviderID string       `bson:"providerId" json:"providerId"`
	Date       string       `bson:"date" json:"date"` // "2006-01-02" in the org timezone
	Kind       OverrideKind `bson:"kind" json:"kind"`
	StartClock string       `bson:"startClock" json:"startClock"`
	EndClock   string       `bson:"endClock" json:"endClock"`
	Reason     string       `bson:"reason,omitempty" json:"reason,omitempty"`
}

// RecurringOverride is the stored definition of an override that repeats.
// Resolution to concrete per-date Override instances is delegated to a
// RecurrenceResolver; the availability engine never sees this type.
type RecurringOverride struct {
	ID         string       `bson:"id" json:"id"`
	OrgID      string       `bson:"orgId" json:"orgId"`
	ProviderID string       `bson:"providerId" json:"providerId"`
	Kind       OverrideKind `bson:"kind" json:"kind"`
	StartClock string       `bson:"startClock" json:"startClock"`
	EndClock   string       `bson:"endClock" json:"endClock"`
	Weekday    time.Weekday `bson:"weekday" json:"weekday"`           // weekly pattern
	StartDate  string       `bson:"startDate" json:"startDate"`       // first date the pattern applies
	EndDate    string       `bson:"endDate,omitempty" json:"endDate"` // empty = indefinite
	Reason     string       `bson:"reason,omitempty" json:"reason,omitempty"`
}
