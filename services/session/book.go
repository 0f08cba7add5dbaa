// File: services/session/book.go
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docta-server/config"
	sessionRepo "docta-server/database/repository/session"
	"docta-server/models"
	"docta-server/services/doctor"
	"docta-server/utils"
)

// Book reserves a period for the calling patient. The session insert and the
// period's Available→Occupied flip commit in one transaction; when two
// callers race for the same period exactly one wins and the other gets a
// PERIOD_OCCUPIED conflict.
func (s *DefaultSessionService) Book(ctx context.Context, userID, periodID string) (*models.Session, error) {
	patient, err := s.PatientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NotFoundError(utils.CodePatientNotFound, "Patient not found")
	}

	period, err := s.PeriodRepo.GetByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, utils.NotFoundError(utils.CodePeriodNotFound, "Period not found")
	}
	if period.Status == models.PeriodStatusOccupied {
		return nil, utils.ConflictError(utils.CodePeriodOccupied, "Period occupied")
	}

	now := nowMillis()
	if now > period.StartTime {
		return nil, utils.ConflictError(utils.CodePeriodPassed, "Period passed")
	}

	doc, err := s.DoctorRepo.GetByID(ctx, period.DoctorID)
	if err != nil {
		return nil, err
	}
	if err := doctor.ValidateDoctor(doc); err != nil {
		return nil, err
	}

	// Booking lead-time guard.
	if now+int64(doc.DontBookMeBeforeInMins)*60*1000 > period.StartTime {
		return nil, utils.ConflictError(utils.CodePeriodTooCloseToStart,
			"Cannot book this period because it's too close to the start time")
	}

	fees := config.Fees()
	pricing := CalculateSessionPrice(PriceInput{
		ConsultationFeePerHour: doc.ConsultationFeePerHour,
		StartTime:              period.StartTime,
		EndTime:                period.EndTime,
		Fees:                   fees,
	})

	sess := &models.Session{
		ID:        uuid.New().String(),
		PeriodID:  period.ID,
		PatientID: patient.ID,
		DoctorID:  doc.ID,
		Pricing:   pricing,
		Meta: models.SessionMeta{
			OriginalDoctorConsultationFeePerHour: doc.ConsultationFeePerHour,
			PlatformPercentage:                   fees.Platform,
			CollectionPercentage:                 fees.Collection,
			DisbursementPercentage:               fees.Disbursement,
		},
		Status:    models.SessionStatusCreated,
		ExpiresAt: now + int64(config.SessionPaymentExpireMinutes())*60*1000,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.BookTransactionally(ctx, sess); err != nil {
		if errors.Is(err, sessionRepo.ErrPeriodUnavailable) {
			return nil, utils.ConflictError(utils.CodePeriodOccupied, "Period occupied")
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	utils.GetLogger().Info("Session booked",
		zap.String("sessionId", sess.ID),
		zap.String("periodId", period.ID),
		zap.String("patientId", patient.ID),
		zap.Int64("totalPrice", pricing.TotalPrice),
	)
	return sess, nil
}
