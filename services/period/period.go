// File: services/period/period.go
package period

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	periodRepo "docta-server/database/repository/period"
	"docta-server/models"
	"docta-server/services/doctor"
	"docta-server/utils"
)

// Overridable clock for tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// Create validates a candidate slot and persists it. Checks run in order and
// reject on the first failure, each with its own error code.
func (s *DefaultPeriodService) Create(ctx context.Context, userID string, req models.CreatePeriodRequest) (*models.Period, error) {
	doc, err := s.DoctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := doctor.ValidateDoctor(doc); err != nil {
		return nil, err
	}

	if !IsValidTimeGap(req.StartTime, req.EndTime) {
		return nil, utils.ConflictError(utils.CodeInvalidTimeGap, "Invalid time gap")
	}
	if !IsBoldTime(req.StartTime) || !IsBoldTime(req.EndTime) {
		return nil, utils.ConflictError(utils.CodeBoldTimeError, "Time is not bold")
	}
	if !IsSameDayInZone(req.StartTime, req.EndTime, doc.Timezone) {
		return nil, utils.ConflictError(utils.CodeNotSameDay, "Period must start and end on the same day")
	}

	overlap, err := s.Repo.HasOverlap(ctx, doc.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, utils.ConflictError(utils.CodeOverlapExists, "Overlap exists")
	}

	p := &models.Period{
		ID:        uuid.New().String(),
		DoctorID:  doc.ID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.PeriodStatusAvailable,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Period created",
		zap.String("periodId", p.ID),
		zap.String("doctorId", doc.ID),
		zap.Int64("startTime", p.StartTime),
	)
	return p, nil
}

// GetMyPeriods returns the doctor's own calendar, Available and Occupied.
func (s *DefaultPeriodService) GetMyPeriods(ctx context.Context, userID string, startTime, endTime int64) ([]models.Period, error) {
	doc, err := s.DoctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := doctor.ValidateDoctor(doc); err != nil {
		return nil, err
	}
	return s.Repo.GetDoctorPeriods(ctx, doc.ID, startTime, endTime)
}

// GetDoctorAvailability returns the bookable slots a patient sees.
func (s *DefaultPeriodService) GetDoctorAvailability(ctx context.Context, doctorID string, startTime, endTime int64) ([]models.Period, error) {
	doc, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if err := doctor.ValidateDoctor(doc); err != nil {
		return nil, err
	}
	return s.Repo.GetAvailablePeriods(ctx, doc.ID, startTime, endTime)
}

// DeleteMyAvailablePeriod soft-deletes the doctor's own period while it is
// still Available.
func (s *DefaultPeriodService) DeleteMyAvailablePeriod(ctx context.Context, userID, periodID string) error {
	doc, err := s.DoctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := doctor.ValidateDoctor(doc); err != nil {
		return err
	}

	err = s.Repo.SoftDelete(ctx, periodID, doc.ID, userID, nowMillis())
	if errors.Is(err, periodRepo.ErrPeriodNotDeletable) {
		return utils.NotFoundError(utils.CodePeriodNotFound, "Period not found")
	}
	return err
}
