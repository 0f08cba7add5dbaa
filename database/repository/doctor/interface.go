// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"docta-server/database"
	"docta-server/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository reads doctor profiles. Lookups scoped to non-deleted
// documents return (nil, nil) when no document matches.
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	GetBySlug(ctx context.Context, slug string) (*models.Doctor, error)
	Filter(ctx context.Context, filter models.DoctorFilter, page, itemsPerPage int) ([]models.Doctor, int64, error)
	EnsureIndexes() error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
