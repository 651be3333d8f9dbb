// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when an insert loses the race for a slot: another
// confirmed booking already holds the same provider and start instant.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository is the authoritative store for reservations.
type BookingRepository interface {
	Insert(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, orgID, bookingID string) (*models.Booking, error)
	GetConfirmedForRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Booking, error)
	ListByOrg(ctx context.Context, orgID string, from, to time.Time) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, orgID, bookingID, status string) error
	SetInvoiceID(ctx context.Context, bookingID, invoiceID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
