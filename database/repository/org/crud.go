// File: database/repository/org/crud.go
package orgRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"slotwise/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoOrgRepo) CreateOrganisation(ctx context.Context, org *models.Organisation) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	org.CreatedAt = time.Now()
	_, err := r.orgs.InsertOne(ctx, org)
	return err
}

func (r *mongoOrgRepo) GetOrganisation(ctx context.Context, orgID string) (*models.Organisation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var org models.Organisation
	if err := r.orgs.FindOne(ctx, bson.M{"id": orgID}).Decode(&org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *mongoOrgRepo) CreateProvider(ctx context.Context, p *models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.providers.InsertOne(ctx, p)
	return err
}

func (r *mongoOrgRepo) GetProvider(ctx context.Context, orgID, providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Provider
	filter := bson.M{"id": providerID, "orgId": orgID}
	if err := r.providers.FindOne(ctx, filter).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoOrgRepo) CreateBookingType(ctx context.Context, bt *models.BookingType) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if bt.ID == "" {
		bt.ID = uuid.New().String()
	}
	_, err := r.bookingTypes.InsertOne(ctx, bt)
	return err
}

func (r *mongoOrgRepo) GetBookingType(ctx context.Context, orgID, bookingTypeID string) (*models.BookingType, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var bt models.BookingType
	filter := bson.M{"id": bookingTypeID, "orgId": orgID}
	if err := r.bookingTypes.FindOne(ctx, filter).Decode(&bt); err != nil {
		return nil, err
	}
	return &bt, nil
}

func (r *mongoOrgRepo) ListBookingTypes(ctx context.Context, orgID string) ([]models.BookingType, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.bookingTypes.Find(ctx, bson.M{"orgId": orgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []models.BookingType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *mongoOrgRepo) CreateAdmin(ctx context.Context, admin *models.OrgAdmin) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.CreatedAt = time.Now()
	_, err := r.admins.InsertOne(ctx, admin)
	return err
}

func (r *mongoOrgRepo) GetAdminByEmail(ctx context.Context, email string) (*models.OrgAdmin, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var admin models.OrgAdmin
	if err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
