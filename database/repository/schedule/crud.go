// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/models"
)

const queryTimeout = 5 * time.Second

// ReplaceWorkingHours swaps a provider's entire weekly schedule in one go.
// The dashboard always submits the full week, so a delete-then-insert keeps
// the stored schedule consistent with what the admin last saw.
func (r *mongoScheduleRepo) ReplaceWorkingHours(ctx context.Context, orgID, providerID string, slots []models.WorkingHourSlot) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.workingHours.DeleteMany(ctx, bson.M{"orgId": orgID, "providerId": providerID}); err != nil {
		return err
	}
	if len(slots) == 0 {
		return nil
	}

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.OrgID = orgID
		slot.ProviderID = providerID
		docs[i] = slot
	}
	_, err := r.workingHours.InsertMany(ctx, docs)
	return err
}

func (r *mongoScheduleRepo) GetWorkingHours(ctx context.Context, orgID, providerID string) ([]models.WorkingHourSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.workingHours.Find(ctx, bson.M{"orgId": orgID, "providerId": providerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.WorkingHourSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoScheduleRepo) CreateOverride(ctx context.Context, ov *models.Override) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if ov.ID == "" {
		ov.ID = uuid.New().String()
	}
	_, err := r.overrides.InsertOne(ctx, ov)
	return err
}

func (r *mongoScheduleRepo) DeleteOverride(ctx context.Context, orgID, overrideID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.overrides.DeleteOne(ctx, bson.M{"id": overrideID, "orgId": orgID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) GetOverridesForDate(ctx context.Context, orgID, providerID, date string) ([]models.Override, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"orgId": orgID, "providerId": providerID, "date": date}
	cursor, err := r.overrides.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var overrides []models.Override
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *mongoScheduleRepo) CreateRecurringOverride(ctx context.Context, ov *models.RecurringOverride) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if ov.ID == "" {
		ov.ID = uuid.New().String()
	}
	_, err := r.recurringOverrides.InsertOne(ctx, ov)
	return err
}

func (r *mongoScheduleRepo) GetRecurringOverrides(ctx context.Context, orgID, providerID string) ([]models.RecurringOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.recurringOverrides.Find(ctx, bson.M{"orgId": orgID, "providerId": providerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var overrides []models.RecurringOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}
