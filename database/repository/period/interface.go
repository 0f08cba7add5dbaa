// File: database/repository/period/interface.go
package periodRepo

import (
	"context"

	"docta-server/database"
	"docta-server/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PeriodRepository manages the durable collection of doctor availability
// slots. Lookups scoped to non-deleted documents return (nil, nil) when no
// document matches.
type PeriodRepository interface {
	Create(ctx context.Context, period *models.Period) error
	GetByID(ctx context.Context, id string) (*models.Period, error)
	HasOverlap(ctx context.Context, doctorID string, startTime, endTime int64) (bool, error)
	GetDoctorPeriods(ctx context.Context, doctorID string, startTime, endTime int64) ([]models.Period, error)
	GetAvailablePeriods(ctx context.Context, doctorID string, startTime, endTime int64) ([]models.Period, error)
	SoftDelete(ctx context.Context, periodID, doctorID, deletedBy string, now int64) error
	EnsureIndexes() error
}

type mongoPeriodRepo struct {
	coll *mongo.Collection
}

// NewMongoPeriodRepo constructs a new MongoDB PeriodRepository.
func NewMongoPeriodRepo() PeriodRepository {
	return &mongoPeriodRepo{
		coll: database.DB().Collection("periods"),
	}
}
