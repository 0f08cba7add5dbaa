// File: services/rating/rating.go
package rating

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docta-server/models"
	"docta-server/utils"
)

// roundAverage rounds a mean to 1 decimal place, the precision persisted on
// the doctor aggregate.
func roundAverage(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*10) / 10
}

func (s *DefaultRatingService) resolvePatient(ctx context.Context, userID string) (*models.Patient, error) {
	patient, err := s.PatientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NotFoundError(utils.CodePatientNotFound, "Patient not found")
	}
	return patient, nil
}

// Create rates a paid or completed session whose period has ended. The
// rating insert and the doctor's new average commit together.
func (s *DefaultRatingService) Create(ctx context.Context, userID, sessionID string, req models.CreateRatingRequest) (*models.Rating, error) {
	patient, err := s.resolvePatient(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail, err := s.SessionRepo.GetByIDForPatient(ctx, sessionID, patient.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, utils.NotFoundError(utils.CodeNotFound, "Session not found")
	}
	if detail.Status != models.SessionStatusPaid && detail.Status != models.SessionStatusCompleted {
		return nil, utils.ConflictError(utils.CodeSessionNotCompleted, "Session must be paid or completed to rate")
	}
	if detail.Period.EndTime > nowMillis() {
		return nil, utils.ConflictError(utils.CodePeriodNotPassed, "Session period has not ended yet")
	}

	exists, err := s.Repo.ExistsForSession(ctx, sessionID, patient.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ConflictError(utils.CodeRatingExistsAlready, "You have already rated this session")
	}

	existing, err := s.Repo.GetAllForDoctor(ctx, detail.DoctorID)
	if err != nil {
		return nil, err
	}
	sum := float64(req.Rating)
	for _, r := range existing {
		sum += float64(r.Rating)
	}
	average := roundAverage(sum, len(existing)+1)

	rating := &models.Rating{
		ID:        uuid.New().String(),
		SessionID: detail.ID,
		PatientID: patient.ID,
		DoctorID:  detail.DoctorID,
		Rating:    req.Rating,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.SaveWithAverage(ctx, rating, average); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Rating created",
		zap.String("ratingId", rating.ID),
		zap.String("doctorId", rating.DoctorID),
		zap.Float64("averageRating", average),
	)
	return rating, nil
}

// Update edits the patient's own rating and recomputes the doctor's average
// with the replaced value.
func (s *DefaultRatingService) Update(ctx context.Context, userID, ratingID string, req models.UpdateRatingRequest) (*models.Rating, error) {
	patient, err := s.resolvePatient(ctx, userID)
	if err != nil {
		return nil, err
	}

	rating, err := s.Repo.GetByIDForPatient(ctx, ratingID, patient.ID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, utils.NotFoundError(utils.CodeNotFound, "Rating not found")
	}

	if req.Rating != nil {
		rating.Rating = *req.Rating
	}
	if req.Message != nil {
		rating.Message = *req.Message
	}

	all, err := s.Repo.GetAllForDoctor(ctx, rating.DoctorID)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, r := range all {
		if r.ID == rating.ID {
			sum += float64(rating.Rating)
			continue
		}
		sum += float64(r.Rating)
	}
	average := roundAverage(sum, len(all))

	if err := s.Repo.SaveWithAverage(ctx, rating, average); err != nil {
		return nil, err
	}
	return rating, nil
}

// Delete soft-deletes the patient's own rating. With no ratings left the
// doctor's average resets to 0.
func (s *DefaultRatingService) Delete(ctx context.Context, userID, ratingID string) (*models.Rating, error) {
	patient, err := s.resolvePatient(ctx, userID)
	if err != nil {
		return nil, err
	}

	rating, err := s.Repo.GetByIDForPatient(ctx, ratingID, patient.ID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, utils.NotFoundError(utils.CodeNotFound, "Rating not found")
	}

	rating.IsDeleted = true

	all, err := s.Repo.GetAllForDoctor(ctx, rating.DoctorID)
	if err != nil {
		return nil, err
	}
	var sum float64
	count := 0
	for _, r := range all {
		if r.ID == rating.ID {
			continue
		}
		sum += float64(r.Rating)
		count++
	}
	average := roundAverage(sum, count)

	if err := s.Repo.SaveWithAverage(ctx, rating, average); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Rating deleted",
		zap.String("ratingId", rating.ID),
		zap.Float64("averageRating", average),
	)
	return rating, nil
}

// ListDoctorRatings is the public paginated listing with an optional
// rating-value filter.
func (s *DefaultRatingService) ListDoctorRatings(ctx context.Context, doctorID string, ratingValue *int, page, itemsPerPage int) ([]models.Rating, int64, error) {
	doc, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, 0, err
	}
	if doc == nil {
		return nil, 0, utils.NotFoundError(utils.CodeDoctorNotFound, "Doctor not found")
	}
	return s.Repo.ListForDoctor(ctx, doctorID, ratingValue, page, itemsPerPage)
}
