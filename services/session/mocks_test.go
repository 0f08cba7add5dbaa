package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docta-server/models"
)

// Mock repositories

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetByIDForPatient(ctx context.Context, sessionID, patientID string) (*models.SessionDetail, error) {
	args := m.Called(ctx, sessionID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionDetail), args.Error(1)
}

func (m *MockSessionRepository) GetByIDForDoctor(ctx context.Context, sessionID, doctorID string) (*models.SessionDetail, error) {
	args := m.Called(ctx, sessionID, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionDetail), args.Error(1)
}

func (m *MockSessionRepository) ListForPatient(ctx context.Context, patientID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error) {
	args := m.Called(ctx, patientID, page, itemsPerPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.SessionDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockSessionRepository) ListForDoctor(ctx context.Context, doctorID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error) {
	args := m.Called(ctx, doctorID, page, itemsPerPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.SessionDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockSessionRepository) BookTransactionally(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) CancelTransactionally(ctx context.Context, sessionID, periodID, newStatus string, cancelledAt int64) error {
	args := m.Called(ctx, sessionID, periodID, newStatus, cancelledAt)
	return args.Error(0)
}

func (m *MockSessionRepository) ExpireDueTransactionally(ctx context.Context, now int64) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

type MockPeriodReader struct {
	mock.Mock
}

func (m *MockPeriodReader) GetByID(ctx context.Context, id string) (*models.Period, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Period), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) GetByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) GetBySlug(ctx context.Context, slug string) (*models.Doctor, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Filter(ctx context.Context, filter models.DoctorFilter, page, itemsPerPage int) ([]models.Doctor, int64, error) {
	args := m.Called(ctx, filter, page, itemsPerPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Doctor), args.Get(1).(int64), args.Error(2)
}

func (m *MockDoctorRepository) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishInitiateRefund(ctx context.Context, evt models.InitiateRefundEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}
