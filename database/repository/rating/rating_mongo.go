// File: database/repository/rating/rating_mongo.go
package ratingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docta-server/models"
)

func (r *mongoRatingRepo) GetByIDForPatient(ctx context.Context, ratingID, patientID string) (*models.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": ratingID, "patientId": patientID, "isDeleted": false}
	var rating models.Rating
	err := r.coll.FindOne(ctx, filter).Decode(&rating)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *mongoRatingRepo) ExistsForSession(ctx context.Context, sessionID, patientID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"sessionId": sessionID, "patientId": patientID, "isDeleted": false}
	err := r.coll.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetAllForDoctor returns every non-deleted rating for the doctor. Used by
// the aggregator to recompute the mean.
func (r *mongoRatingRepo) GetAllForDoctor(ctx context.Context, doctorID string) ([]models.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "isDeleted": false}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *mongoRatingRepo) ListForDoctor(ctx context.Context, doctorID string, ratingValue *int, page, itemsPerPage int) ([]models.Rating, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "isDeleted": false}
	if ratingValue != nil {
		filter["rating"] = *ratingValue
	}

	skip := int64((page - 1) * itemsPerPage)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(itemsPerPage))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, 0, err
	}

	totalItems, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ratings, totalItems, nil
}

// SaveWithAverage keeps the derived aggregate consistent with the rating
// write: both commit or neither does.
func (r *mongoRatingRepo) SaveWithAverage(ctx context.Context, rating *models.Rating, average float64) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}

		replaceOpts := options.Replace().SetUpsert(true)
		if _, err := r.coll.ReplaceOne(sc, bson.M{"id": rating.ID}, rating, replaceOpts); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("save rating failed: %w", err)
		}

		update := bson.M{"$set": bson.M{"averageRating": average}}
		res, err := r.doctorColl.UpdateOne(sc, bson.M{"id": rating.DoctorID}, update)
		if err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("update doctor average failed: %w", err)
		}
		if res.MatchedCount == 0 {
			_ = sc.AbortTransaction(sc)
			return mongo.ErrNoDocuments
		}

		return sc.CommitTransaction(sc)
	})
}
