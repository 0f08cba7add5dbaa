// File: services/session/queries.go
package session

import (
	"context"

	"docta-server/models"
	"docta-server/services/doctor"
	"docta-server/utils"
)

func (s *DefaultSessionService) resolvePatient(ctx context.Context, userID string) (*models.Patient, error) {
	patient, err := s.PatientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NotFoundError(utils.CodePatientNotFound, "Patient not found")
	}
	return patient, nil
}

func (s *DefaultSessionService) resolveDoctor(ctx context.Context, userID string) (*models.Doctor, error) {
	doc, err := s.DoctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := doctor.ValidateDoctor(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DefaultSessionService) GetPatientSession(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error) {
	patient, err := s.resolvePatient(ctx, userID)
	if err != nil {
		return nil, err
	}
	detail, err := s.Repo.GetByIDForPatient(ctx, sessionID, patient.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, utils.NotFoundError(utils.CodeNotFound, "Session not found")
	}
	return detail, nil
}

func (s *DefaultSessionService) GetDoctorSession(ctx context.Context, userID, sessionID string) (*models.SessionDetail, error) {
	doc, err := s.resolveDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}
	detail, err := s.Repo.GetByIDForDoctor(ctx, sessionID, doc.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, utils.NotFoundError(utils.CodeNotFound, "Session not found")
	}
	return detail, nil
}

// GetPatientFromSession lets a doctor view the public profile of the patient
// booked on one of their own sessions.
func (s *DefaultSessionService) GetPatientFromSession(ctx context.Context, userID, sessionID string) (*models.PatientPublic, error) {
	detail, err := s.GetDoctorSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if detail.Patient == nil {
		return nil, utils.NotFoundError(utils.CodePatientNotFound, "Patient not found")
	}
	return detail.Patient, nil
}

func (s *DefaultSessionService) ListPatientSessions(ctx context.Context, userID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error) {
	patient, err := s.resolvePatient(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.Repo.ListForPatient(ctx, patient.ID, page, itemsPerPage)
}

func (s *DefaultSessionService) ListDoctorSessions(ctx context.Context, userID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error) {
	doc, err := s.resolveDoctor(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.Repo.ListForDoctor(ctx, doc.ID, page, itemsPerPage)
}
