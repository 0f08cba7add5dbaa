// File: services/session/cancel.go
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"docta-server/config"
	sessionRepo "docta-server/database/repository/session"
	"docta-server/models"
	"docta-server/services/doctor"
	"docta-server/utils"
)

// cancelRules is the per-direction rule table: the terminal status to apply,
// which source statuses may be cancelled, the cancellation window and the
// refund direction carried on the event when the session was paid.
type cancelRules struct {
	targetStatus    string
	allowedStatuses map[string]bool
	windowMinutes   func() int
	refundDirection string
}

var doctorCancel = cancelRules{
	targetStatus: models.SessionStatusCancelledByDoctor,
	// A doctor may only cancel a paid session; an unpaid one simply expires.
	allowedStatuses: map[string]bool{models.SessionStatusPaid: true},
	windowMinutes:   config.DoctorCancelWindowMinutes,
	refundDirection: models.RefundDirectionDoctor,
}

var patientCancel = cancelRules{
	targetStatus: models.SessionStatusCancelledByPatient,
	allowedStatuses: map[string]bool{
		models.SessionStatusCreated: true,
		models.SessionStatusPaid:    true,
	},
	windowMinutes:   config.PatientCancelWindowMinutes,
	refundDirection: models.RefundDirectionPatient,
}

// CancelByDoctor cancels the doctor's own paid session and releases its
// period.
func (s *DefaultSessionService) CancelByDoctor(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error) {
	doc, err := s.DoctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := doctor.ValidateDoctor(doc); err != nil {
		return nil, err
	}

	detail, err := s.Repo.GetByIDForDoctor(ctx, sessionID, doc.ID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, detail, doctorCancel)
}

// CancelByPatient cancels the patient's own session and releases its period.
func (s *DefaultSessionService) CancelByPatient(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error) {
	patient, err := s.PatientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NotFoundError(utils.CodePatientNotFound, "Patient not found")
	}

	detail, err := s.Repo.GetByIDForPatient(ctx, sessionID, patient.ID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, detail, patientCancel)
}

func (s *DefaultSessionService) cancel(ctx context.Context, detail *models.SessionDetail, rules cancelRules) (*models.SessionDetail, error) {
	if detail == nil {
		return nil, utils.NotFoundError(utils.CodeNotFound, "Session not found")
	}

	if detail.IsCancelled() {
		return nil, utils.ConflictError(utils.CodeSessionAlreadyCancelled, "Session is already cancelled")
	}
	if !rules.allowedStatuses[detail.Status] {
		if rules.targetStatus == models.SessionStatusCancelledByDoctor {
			return nil, utils.ConflictError(utils.CodeSessionNotPaid, "Only a paid session can be cancelled by the doctor")
		}
		return nil, utils.ConflictError(utils.CodeBadRequest, "Session can no longer be cancelled")
	}

	now := nowMillis()
	if detail.Period.StartTime < now {
		return nil, utils.ConflictError(utils.CodePeriodPassed, "Session has already started")
	}
	if now+int64(rules.windowMinutes())*60*1000 > detail.Period.StartTime {
		return nil, utils.ConflictError(utils.CodeCancelWindowPassed,
			"Too close to the session start time to cancel")
	}

	wasPaid := detail.Status == models.SessionStatusPaid

	if err := s.Repo.CancelTransactionally(ctx, detail.ID, detail.PeriodID, rules.targetStatus, now); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotCancellable) {
			// The session left Created/Paid after our read, e.g. the expiry
			// sweeper reaped it. The period stays with whoever holds it now.
			return nil, utils.ConflictError(utils.CodeSessionAlreadyCancelled, "Session can no longer be cancelled")
		}
		return nil, fmt.Errorf("cancel transaction failed: %w", err)
	}
	detail.Status = rules.targetStatus
	detail.CancelledAt = now
	detail.Period.Status = models.PeriodStatusAvailable

	logger := utils.GetLogger()
	logger.Info("Session cancelled",
		zap.String("sessionId", detail.ID),
		zap.String("status", rules.targetStatus),
	)

	// Refunds are initiated only after the local commit; a publish failure
	// is logged and never rolls the cancellation back. The queue retries and
	// the consumer dedupes by session id.
	if wasPaid {
		evt := models.InitiateRefundEvent{
			SessionID:       detail.ID,
			PatientID:       detail.PatientID,
			DoctorID:        detail.DoctorID,
			RefundDirection: rules.refundDirection,
		}
		if err := s.Publisher.PublishInitiateRefund(ctx, evt); err != nil {
			logger.Error("Failed to publish refund event",
				zap.String("sessionId", detail.ID),
				zap.Error(err),
			)
		}
	}

	return detail, nil
}
