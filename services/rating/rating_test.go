package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docta-server/models"
	"docta-server/utils"
)

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) GetByIDForPatient(ctx context.Context, ratingID, patientID string) (*models.Rating, error) {
	args := m.Called(ctx, ratingID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ExistsForSession(ctx context.Context, sessionID, patientID string) (bool, error) {
	args := m.Called(ctx, sessionID, patientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) GetAllForDoctor(ctx context.Context, doctorID string) ([]models.Rating, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListForDoctor(ctx context.Context, doctorID string, ratingValue *int, page, itemsPerPage int) ([]models.Rating, int64, error) {
	args := m.Called(ctx, doctorID, ratingValue, page, itemsPerPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Rating), args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingRepository) SaveWithAverage(ctx context.Context, rating *models.Rating, average float64) error {
	args := m.Called(ctx, rating, average)
	return args.Error(0)
}

func (m *MockRatingRepository) EnsureIndexes() error {
	args := m.Called()
	return args.Error(0)
}

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

const testNow = int64(1_750_000_000_000)

func withNow(t *testing.T, now int64) {
	prev := nowMillis
	nowMillis = func() int64 { return now }
	t.Cleanup(func() { nowMillis = prev })
}

func assertAppError(t *testing.T, err error, kind utils.ErrorKind, code string) {
	t.Helper()
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr), "expected *utils.AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	assert.Equal(t, code, appErr.Code)
}

func completedDetail() *models.SessionDetail {
	return &models.SessionDetail{
		Session: models.Session{
			ID:        "sess-1",
			PeriodID:  "per-1",
			PatientID: "pat-1",
			DoctorID:  "doc-1",
			Status:    models.SessionStatusCompleted,
		},
		Period: models.Period{
			ID:        "per-1",
			DoctorID:  "doc-1",
			StartTime: testNow - 2*60*60*1000,
			EndTime:   testNow - 60*60*1000,
		},
	}
}

func TestRoundAverage(t *testing.T) {
	assert.Equal(t, 4.5, roundAverage(9, 2))
	assert.Equal(t, 4.3, roundAverage(13, 3))
	assert.Equal(t, 5.0, roundAverage(5, 1))
	assert.Equal(t, 0.0, roundAverage(0, 0))
}

func TestCreateRating_AverageOverExisting(t *testing.T) {
	withNow(t, testNow)
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}

	rr := new(MockRatingRepository)
	sr := new(MockSessionRepository)
	patr := new(MockPatientRepository)

	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	sr.On("GetByIDForPatient", mock.Anything, "sess-1", "pat-1").Return(completedDetail(), nil)
	rr.On("ExistsForSession", mock.Anything, "sess-1", "pat-1").Return(false, nil)
	rr.On("GetAllForDoctor", mock.Anything, "doc-1").Return([]models.Rating{
		{ID: "r-1", Rating: 5},
	}, nil)
	// {5, 4} averages to 4.5.
	rr.On("SaveWithAverage", mock.Anything, mock.AnythingOfType("*models.Rating"), 4.5).Return(nil)

	svc := &DefaultRatingService{Repo: rr, SessionRepo: sr, PatientRepo: patr}
	got, err := svc.Create(context.Background(), "user-1", "sess-1", models.CreateRatingRequest{Rating: 4, Message: "great"})

	assert.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "doc-1", got.DoctorID)
	assert.Equal(t, "pat-1", got.PatientID)
	rr.AssertExpectations(t)
}

func TestCreateRating_FirstRating(t *testing.T) {
	withNow(t, testNow)
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}

	rr := new(MockRatingRepository)
	sr := new(MockSessionRepository)
	patr := new(MockPatientRepository)

	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	sr.On("GetByIDForPatient", mock.Anything, "sess-1", "pat-1").Return(completedDetail(), nil)
	rr.On("ExistsForSession", mock.Anything, "sess-1", "pat-1").Return(false, nil)
	rr.On("GetAllForDoctor", mock.Anything, "doc-1").Return([]models.Rating{}, nil)
	rr.On("SaveWithAverage", mock.Anything, mock.AnythingOfType("*models.Rating"), 3.0).Return(nil)

	svc := &DefaultRatingService{Repo: rr, SessionRepo: sr, PatientRepo: patr}
	_, err := svc.Create(context.Background(), "user-1", "sess-1", models.CreateRatingRequest{Rating: 3})

	assert.NoError(t, err)
	rr.AssertExpectations(t)
}

func TestCreateRating_SessionNotCompleted(t *testing.T) {
	withNow(t, testNow)
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}
	detail := completedDetail()
	detail.Status = models.SessionStatusCreated

	sr := new(MockSessionRepository)
	patr := new(MockPatientRepository)
	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	sr.On("GetByIDForPatient", mock.Anything, "sess-1", "pat-1").Return(detail, nil)

	svc := &DefaultRatingService{Repo: new(MockRatingRepository), SessionRepo: sr, PatientRepo: patr}
	_, err := svc.Create(context.Background(), "user-1", "sess-1", models.CreateRatingRequest{Rating: 4})

	assertAppError(t, err, utils.KindConflict, utils.CodeSessionNotCompleted)
}

func TestCreateRating_PeriodNotYetPassed(t *testing.T) {
	withNow(t, testNow)
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}
	detail := completedDetail()
	detail.Status = models.SessionStatusPaid
	detail.Period.StartTime = testNow + 60*60*1000
	detail.Period.EndTime = testNow + 2*60*60*1000

	sr := new(MockSessionRepository)
	patr := new(MockPatientRepository)
	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	sr.On("GetByIDForPatient", mock.Anything, "sess-1", "pat-1").Return(detail, nil)

	svc := &DefaultRatingService{Repo: new(MockRatingRepository), SessionRepo: sr, PatientRepo: patr}
	_, err := svc.Create(context.Background(), "user-1", "sess-1", models.CreateRatingRequest{Rating: 4})

	assertAppError(t, err, utils.KindConflict, utils.CodePeriodNotPassed)
}

func TestCreateRating_AlreadyRated(t *testing.T) {
	withNow(t, testNow)
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}

	rr := new(MockRatingRepository)
	sr := new(MockSessionRepository)
	patr := new(MockPatientRepository)

	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	sr.On("GetByIDForPatient", mock.Anything, "sess-1", "pat-1").Return(completedDetail(), nil)
	rr.On("ExistsForSession", mock.Anything, "sess-1", "pat-1").Return(true, nil)

	svc := &DefaultRatingService{Repo: rr, SessionRepo: sr, PatientRepo: patr}
	_, err := svc.Create(context.Background(), "user-1", "sess-1", models.CreateRatingRequest{Rating: 4})

	assertAppError(t, err, utils.KindConflict, utils.CodeRatingExistsAlready)
	rr.AssertNotCalled(t, "SaveWithAverage", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRating_RecomputesWithReplacedValue(t *testing.T) {
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}
	mine := &models.Rating{ID: "r-1", DoctorID: "doc-1", PatientID: "pat-1", Rating: 2}
	newValue := 5

	rr := new(MockRatingRepository)
	patr := new(MockPatientRepository)

	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	rr.On("GetByIDForPatient", mock.Anything, "r-1", "pat-1").Return(mine, nil)
	rr.On("GetAllForDoctor", mock.Anything, "doc-1").Return([]models.Rating{
		{ID: "r-1", Rating: 2},
		{ID: "r-2", Rating: 4},
	}, nil)
	// {5, 4} averages to 4.5 once r-1 carries its new value.
	rr.On("SaveWithAverage", mock.Anything, mine, 4.5).Return(nil)

	svc := &DefaultRatingService{Repo: rr, PatientRepo: patr}
	got, err := svc.Update(context.Background(), "user-1", "r-1", models.UpdateRatingRequest{Rating: &newValue})

	assert.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	rr.AssertExpectations(t)
}

func TestDeleteRating_RecomputesWithoutIt(t *testing.T) {
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}
	mine := &models.Rating{ID: "r-1", DoctorID: "doc-1", PatientID: "pat-1", Rating: 4}

	rr := new(MockRatingRepository)
	patr := new(MockPatientRepository)

	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	rr.On("GetByIDForPatient", mock.Anything, "r-1", "pat-1").Return(mine, nil)
	rr.On("GetAllForDoctor", mock.Anything, "doc-1").Return([]models.Rating{
		{ID: "r-1", Rating: 4},
		{ID: "r-2", Rating: 5},
	}, nil)
	rr.On("SaveWithAverage", mock.Anything, mine, 5.0).Return(nil)

	svc := &DefaultRatingService{Repo: rr, PatientRepo: patr}
	got, err := svc.Delete(context.Background(), "user-1", "r-1")

	assert.NoError(t, err)
	assert.True(t, got.IsDeleted)
	rr.AssertExpectations(t)
}

func TestDeleteRating_LastRatingResetsAverage(t *testing.T) {
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}
	mine := &models.Rating{ID: "r-1", DoctorID: "doc-1", PatientID: "pat-1", Rating: 4}

	rr := new(MockRatingRepository)
	patr := new(MockPatientRepository)

	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	rr.On("GetByIDForPatient", mock.Anything, "r-1", "pat-1").Return(mine, nil)
	rr.On("GetAllForDoctor", mock.Anything, "doc-1").Return([]models.Rating{
		{ID: "r-1", Rating: 4},
	}, nil)
	rr.On("SaveWithAverage", mock.Anything, mine, 0.0).Return(nil)

	svc := &DefaultRatingService{Repo: rr, PatientRepo: patr}
	_, err := svc.Delete(context.Background(), "user-1", "r-1")

	assert.NoError(t, err)
	rr.AssertExpectations(t)
}

func TestUpdateRating_NotFound(t *testing.T) {
	patient := &models.Patient{ID: "pat-1", UserID: "user-1"}

	rr := new(MockRatingRepository)
	patr := new(MockPatientRepository)
	patr.On("GetByUserID", mock.Anything, "user-1").Return(patient, nil)
	rr.On("GetByIDForPatient", mock.Anything, "r-1", "pat-1").Return(nil, nil)

	svc := &DefaultRatingService{Repo: rr, PatientRepo: patr}
	_, err := svc.Update(context.Background(), "user-1", "r-1", models.UpdateRatingRequest{})

	assertAppError(t, err, utils.KindNotFound, utils.CodeNotFound)
}
