// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"

	"docta-server/database"
	"docta-server/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository reads patient profiles. Lookups return (nil, nil) when
// no non-deleted document matches.
type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByUserID(ctx context.Context, userID string) (*models.Patient, error)
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	return &mongoPatientRepo{
		coll: database.DB().Collection("patients"),
	}
}
