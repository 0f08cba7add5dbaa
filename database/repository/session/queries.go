// File: database/repository/session/queries.go
package sessionRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"docta-server/models"
)

// detailPipeline joins a session with its period and, when withPatient is
// set, the patient's public profile. Results are sorted by period start.
func detailPipeline(match bson.M, withPatient bool) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "periods",
			"localField":   "periodId",
			"foreignField": "id",
			"as":           "period",
		}}},
		bson.D{{Key: "$unwind", Value: "$period"}},
	}
	if withPatient {
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         "patients",
				"localField":   "patientId",
				"foreignField": "id",
				"as":           "patient",
			}}},
			bson.D{{Key: "$unwind", Value: "$patient"}},
		)
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"period.startTime": 1}}})
	return pipeline
}

func (r *mongoSessionRepo) getOne(ctx context.Context, match bson.M, withPatient bool) (*models.SessionDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, detailPipeline(match, withPatient))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.SessionDetail
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

func (r *mongoSessionRepo) GetByIDForPatient(ctx context.Context, sessionID, patientID string) (*models.SessionDetail, error) {
	return r.getOne(ctx, bson.M{"id": sessionID, "patientId": patientID}, false)
}

func (r *mongoSessionRepo) GetByIDForDoctor(ctx context.Context, sessionID, doctorID string) (*models.SessionDetail, error) {
	return r.getOne(ctx, bson.M{"id": sessionID, "doctorId": doctorID}, true)
}

func (r *mongoSessionRepo) list(ctx context.Context, match bson.M, withPatient bool, page, itemsPerPage int) ([]models.SessionDetail, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	skip := int64((page - 1) * itemsPerPage)
	base := detailPipeline(match, withPatient)

	pagePipeline := append(mongo.Pipeline{}, base...)
	pagePipeline = append(pagePipeline,
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: int64(itemsPerPage)}},
	)

	cursor, err := r.coll.Aggregate(ctx, pagePipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []models.SessionDetail
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	totalItems, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}
	return items, totalItems, nil
}

func (r *mongoSessionRepo) ListForPatient(ctx context.Context, patientID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error) {
	return r.list(ctx, bson.M{"patientId": patientID}, false, page, itemsPerPage)
}

func (r *mongoSessionRepo) ListForDoctor(ctx context.Context, doctorID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error) {
	return r.list(ctx, bson.M{"doctorId": doctorID}, true, page, itemsPerPage)
}
