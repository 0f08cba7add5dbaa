// File: database/repository/doctor/doctor_mongo.go
package doctorRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docta-server/models"
)

func (r *mongoDoctorRepo) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	err := r.coll.FindOne(ctx, filter).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"id": id, "isDeleted": false})
}

func (r *mongoDoctorRepo) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "isDeleted": false})
}

func (r *mongoDoctorRepo) GetBySlug(ctx context.Context, slug string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "isDeleted": false})
}

// Filter lists publicly visible doctors matching the optional criteria.
func (r *mongoDoctorRepo) Filter(ctx context.Context, filter models.DoctorFilter, page, itemsPerPage int) ([]models.Doctor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{
		"isActive":  true,
		"isVisible": true,
		"isDeleted": false,
	}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Name, Options: "i"}}
	}
	if filter.SpecialtyID != "" {
		query["specialtyId"] = filter.SpecialtyID
	}
	if filter.IsVerified != nil {
		query["isVerified"] = *filter.IsVerified
	}
	if filter.MinConsultationFee != nil || filter.MaxConsultationFee != nil {
		fee := bson.M{}
		if filter.MinConsultationFee != nil {
			fee["$gte"] = *filter.MinConsultationFee
		}
		if filter.MaxConsultationFee != nil {
			fee["$lte"] = *filter.MaxConsultationFee
		}
		query["consultationFeePerHour"] = fee
	}
	if len(filter.Expertises) > 0 {
		query["expertises"] = bson.M{"$in": filter.Expertises}
	}

	skip := int64((page - 1) * itemsPerPage)
	opts := options.Find().SetSkip(skip).SetLimit(int64(itemsPerPage))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, 0, err
	}

	totalItems, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return doctors, totalItems, nil
}
