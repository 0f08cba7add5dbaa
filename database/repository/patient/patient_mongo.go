// File: database/repository/patient/patient_mongo.go
package patientRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"docta-server/models"
)

func (r *mongoPatientRepo) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patient models.Patient
	err := r.coll.FindOne(ctx, filter).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *mongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"id": id, "isDeleted": false})
}

func (r *mongoPatientRepo) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "isDeleted": false})
}
