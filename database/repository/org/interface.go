// File: database/repository/org/interface.go
package orgRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrgRepository provides access to organisations, their providers, booking
// types and dashboard admins.
type OrgRepository interface {
	CreateOrganisation(ctx context.Context, org *models.Organisation) error
	GetOrganisation(ctx context.Context, orgID string) (*models.Organisation, error)

	CreateProvider(ctx context.Context, p *models.Provider) error
	GetProvider(ctx context.Context, orgID, providerID string) (*models.Provider, error)

	CreateBookingType(ctx context.Context, bt *models.BookingType) error
	GetBookingType(ctx context.Context, orgID, bookingTypeID string) (*models.BookingType, error)
	ListBookingTypes(ctx context.Context, orgID string) ([]models.BookingType, error)

	CreateAdmin(ctx context.Context, admin *models.OrgAdmin) error
	GetAdminByEmail(ctx context.Context, email string) (*models.OrgAdmin, error)
}

type mongoOrgRepo struct {
	orgs         *mongo.Collection
	providers    *mongo.Collection
	bookingTypes *mongo.Collection
	admins       *mongo.Collection
}

// NewMongoOrgRepo constructs a new MongoDB OrgRepository.
func NewMongoOrgRepo() OrgRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoOrgRepo{
		orgs:         db.Collection("organisations"),
		providers:    db.Collection("providers"),
		bookingTypes: db.Collection("bookingTypes"),
		admins:       db.Collection("orgAdmins"),
	}
}
