// File: database/repository/period/period_mongo.go
package periodRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docta-server/models"
)

// ErrPeriodNotDeletable signals that the period is missing, already deleted,
// or no longer Available.
var ErrPeriodNotDeletable = errors.New("period not found or not available")

func (r *mongoPeriodRepo) Create(ctx context.Context, period *models.Period) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, period)
	return err
}

func (r *mongoPeriodRepo) GetByID(ctx context.Context, id string) (*models.Period, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "isDeleted": false}
	var period models.Period
	err := r.coll.FindOne(ctx, filter).Decode(&period)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// HasOverlap reports whether any non-deleted period of the doctor intersects
// [startTime, endTime). Intervals are half-open, so a period ending exactly
// at startTime does not overlap.
func (r *mongoPeriodRepo) HasOverlap(ctx context.Context, doctorID string, startTime, endTime int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId":  doctorID,
		"isDeleted": false,
		"$or": bson.A{
			// New start is inside an existing period.
			bson.M{"startTime": bson.M{"$lte": startTime}, "endTime": bson.M{"$gt": startTime}},
			// New end is inside an existing period.
			bson.M{"startTime": bson.M{"$lt": endTime}, "endTime": bson.M{"$gte": endTime}},
			// New period fully covers an existing one.
			bson.M{"startTime": bson.M{"$gte": startTime}, "endTime": bson.M{"$lte": endTime}},
		},
	}

	err := r.coll.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetDoctorPeriods returns the doctor's own calendar within the range, both
// Available and Occupied, sorted by start time.
func (r *mongoPeriodRepo) GetDoctorPeriods(ctx context.Context, doctorID string, startTime, endTime int64) ([]models.Period, error) {
	filter := bson.M{
		"doctorId":  doctorID,
		"isDeleted": false,
		"startTime": bson.M{"$gte": startTime},
		"endTime":   bson.M{"$lte": endTime},
	}
	return r.find(ctx, filter)
}

// GetAvailablePeriods returns the bookable slots a patient sees.
func (r *mongoPeriodRepo) GetAvailablePeriods(ctx context.Context, doctorID string, startTime, endTime int64) ([]models.Period, error) {
	filter := bson.M{
		"doctorId":  doctorID,
		"isDeleted": false,
		"status":    models.PeriodStatusAvailable,
		"startTime": bson.M{"$gte": startTime},
		"endTime":   bson.M{"$lte": endTime},
	}
	return r.find(ctx, filter)
}

func (r *mongoPeriodRepo) find(ctx context.Context, filter bson.M) ([]models.Period, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.Period
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// SoftDelete marks the doctor's own period deleted, but only while it is
// still Available. Booked periods must be released through cancellation.
func (r *mongoPeriodRepo) SoftDelete(ctx context.Context, periodID, doctorID, deletedBy string, now int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":        periodID,
		"doctorId":  doctorID,
		"isDeleted": false,
		"status":    models.PeriodStatusAvailable,
	}
	update := bson.M{
		"$set": bson.M{
			"isDeleted": true,
			"deletedAt": now,
			"deletedBy": deletedBy,
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPeriodNotDeletable
	}
	return nil
}
