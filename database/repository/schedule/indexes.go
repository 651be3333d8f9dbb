// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the lookup indexes schedule queries depend on.
func (r *mongoScheduleRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.workingHours.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "orgId", Value: 1}, {Key: "providerId", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = r.overrides.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "orgId", Value: 1}, {Key: "providerId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = r.recurringOverrides.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "orgId", Value: 1}, {Key: "providerId", Value: 1}},
	})
	return err
}
