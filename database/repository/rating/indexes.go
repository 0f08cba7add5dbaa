// FILE: database/repository/rating/indexes.go
package ratingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the ratings collection.
func (r *mongoRatingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One non-deleted rating per (session, patient)
		{
			Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "patientId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"isDeleted": false}).
				SetName("unique_session_patient_live"),
		},
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "isDeleted", Value: 1}},
			Options: options.Index().SetName("doctor_deleted_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create rating indexes: %w", err)
	}
	return nil
}
