package models

import "time"

// Organisation is a tenant of the platform.
type Organisation struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Timezone         string    `bson:"timezone" json:"timezone"` // IANA identifier, e.g. "Europe/London"
	StripeCustomerID string    `bson:"stripeCustomerId,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// Provider is a bookable person or resource belonging to an organisation.
type Provider struct {
	ID       string           `bson:"id" json:"id"`
	OrgID    string           `bson:"orgId" json:"orgId"`
	Name     string           `bson:"name" json:"name"`
	Email    string           `bson:"email" json:"email"`
	Calendar *CalendarAccount `bson:"calendar,omitempty" json:"calendar,omitempty"`
}

// CalendarAccount links a provider to an external calendar whose busy times
// are subtracted from availability. Token refresh happens elsewhere; by the
// time availability is computed AccessToken is assumed valid.
type CalendarAccount struct {
	Vendor      string   `bson:"vendor" json:"vendor"` // currently only "google"
	Email       string   `bson:"email" json:"email"`
	AccessToken string   `bson:"accessToken" json:"-"`
	CalendarIDs []string `bson:"calendarIds" json:"calendarIds"` // sub-calendars to consult
}

// OrgAdmin is a dashboard login for an organisation.
type OrgAdmin struct {
	ID           string    `bson:"id" json:"id"`
	OrgID        string    `bson:"orgId" json:"orgId"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
