// File: database/repository/rating/interface.go
package ratingRepo

import (
	"context"

	"docta-server/database"
	"docta-server/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RatingRepository manages session ratings and the transactional maintenance
// of the doctor's average. Scoped lookups return (nil, nil) when no document
// matches.
type RatingRepository interface {
	GetByIDForPatient(ctx context.Context, ratingID, patientID string) (*models.Rating, error)
	ExistsForSession(ctx context.Context, sessionID, patientID string) (bool, error)
	GetAllForDoctor(ctx context.Context, doctorID string) ([]models.Rating, error)
	ListForDoctor(ctx context.Context, doctorID string, ratingValue *int, page, itemsPerPage int) ([]models.Rating, int64, error)

	// SaveWithAverage upserts the rating document and writes the doctor's
	// recomputed averageRating in the same transaction.
	SaveWithAverage(ctx context.Context, rating *models.Rating, average float64) error

	EnsureIndexes() error
}

type mongoRatingRepo struct {
	coll       *mongo.Collection
	doctorColl *mongo.Collection
}

// NewMongoRatingRepo constructs a new MongoDB RatingRepository.
func NewMongoRatingRepo() RatingRepository {
	db := database.DB()
	return &mongoRatingRepo{
		coll:       db.Collection("ratings"),
		doctorColl: db.Collection("doctors"),
	}
}
