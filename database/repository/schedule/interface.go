// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository stores working hours and schedule overrides.
type ScheduleRepository interface {
	ReplaceWorkingHours(ctx context.Context, orgID, providerID string, slots []models.WorkingHourSlot) error
	GetWorkingHours(ctx context.Context, orgID, providerID string) ([]models.WorkingHourSlot, error)

	CreateOverride(ctx context.Context, ov *models.Override) error
	DeleteOverride(ctx context.Context, orgID, overrideID string) error
	GetOverridesForDate(ctx context.Context, orgID, providerID, date string) ([]models.Override, error)

	CreateRecurringOverride(ctx context.Context, ov *models.RecurringOverride) error
	GetRecurringOverrides(ctx context.Context, orgID, providerID string) ([]models.RecurringOverride, error)

	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	workingHours       *mongo.Collection
	overrides          *mongo.Collection
	recurringOverrides *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoScheduleRepo{
		workingHours:       db.Collection("workingHours"),
		overrides:          db.Collection("overrides"),
		recurringOverrides: db.Collection("recurringOverrides"),
	}
}
