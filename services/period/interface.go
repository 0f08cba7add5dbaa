// File: services/period/interface.go
package period

import (
	"context"

	doctorRepo "docta-server/database/repository/doctor"
	periodRepo "docta-server/database/repository/period"
	"docta-server/models"
)

// PeriodService manages a doctor's availability slots.
type PeriodService interface {
	Create(ctx context.Context, userID string, req models.CreatePeriodRequest) (*models.Period, error)
	GetMyPeriods(ctx context.Context, userID string, startTime, endTime int64) ([]models.Period, error)
	GetDoctorAvailability(ctx context.Context, doctorID string, startTime, endTime int64) ([]models.Period, error)
	DeleteMyAvailablePeriod(ctx context.Context, userID, periodID string) error
}

// DefaultPeriodService is the production implementation backed by Mongo.
type DefaultPeriodService struct {
	Repo       periodRepo.PeriodRepository
	DoctorRepo doctorRepo.DoctorRepository
}
