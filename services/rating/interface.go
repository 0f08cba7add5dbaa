// File: services/rating/interface.go
package rating

import (
	"context"
	"time"

	doctorRepo "docta-server/database/repository/doctor"
	patientRepo "docta-server/database/repository/patient"
	ratingRepo "docta-server/database/repository/rating"
	sessionRepo "docta-server/database/repository/session"
	"docta-server/models"
)

// RatingService manages session ratings and keeps the doctor's
// averageRating aggregate consistent with every write.
type RatingService interface {
	Create(ctx context.Context, userID, sessionID string, req models.CreateRatingRequest) (*models.Rating, error)
	Update(ctx context.Context, userID, ratingID string, req models.UpdateRatingRequest) (*models.Rating, error)
	Delete(ctx context.Context, userID, ratingID string) (*models.Rating, error)
	ListDoctorRatings(ctx context.Context, doctorID string, ratingValue *int, page, itemsPerPage int) ([]models.Rating, int64, error)
}

// DefaultRatingService is the production implementation backed by Mongo.
type DefaultRatingService struct {
	Repo        ratingRepo.RatingRepository
	SessionRepo sessionRepo.SessionRepository
	DoctorRepo  doctorRepo.DoctorRepository
	PatientRepo patientRepo.PatientRepository
}

// Overridable clock for tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }
