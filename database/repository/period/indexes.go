// FILE: database/repository/period/indexes.go
package periodRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the periods collection.
func (r *mongoPeriodRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on period ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index backing the overlap query
		{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "isDeleted", Value: 1},
				{Key: "startTime", Value: 1},
				{Key: "endTime", Value: 1},
			},
			Options: options.Index().SetName("doctor_deleted_start_end_idx"),
		},
		// Availability listing filter
		{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "startTime", Value: 1},
			},
			Options: options.Index().SetName("doctor_status_start_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create period indexes: %w", err)
	}
	return nil
}
