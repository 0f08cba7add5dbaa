// File: services/session/interface.go
package session

import (
	"context"
	"time"

	doctorRepo "docta-server/database/repository/doctor"
	patientRepo "docta-server/database/repository/patient"
	sessionRepo "docta-server/database/repository/session"
	"docta-server/events"
	"docta-server/models"
)

// SessionService is the reservation engine: booking, cancellation and the
// caller-scoped session reads.
type SessionService interface {
	Book(ctx context.Context, userID, periodID string) (*models.Session, error)
	CancelByDoctor(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error)
	CancelByPatient(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error)

	GetPatientSession(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error)
	GetDoctorSession(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error)
	GetPatientFromSession(ctx context.Context, userID, sessionID string) (*models.PatientPublic, error)
	ListPatientSessions(ctx context.Context, userID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error)
	ListDoctorSessions(ctx context.Context, userID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error)
}

// DefaultSessionService is the production implementation backed by Mongo and
// the refund event queue.
type DefaultSessionService struct {
	Repo        sessionRepo.SessionRepository
	PeriodRepo  periodReader
	DoctorRepo  doctorRepo.DoctorRepository
	PatientRepo patientRepo.PatientRepository
	Publisher   events.Publisher
}

// periodReader is the slice of the period repository booking needs.
type periodReader interface {
	GetByID(ctx context.Context, id string) (*models.Period, error)
}

// Overridable clock for tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }
