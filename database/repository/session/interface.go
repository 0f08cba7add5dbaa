// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"

	"docta-server/database"
	"docta-server/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SessionRepository manages reservations and the transactional dual-writes
// with their periods. Scoped lookups return (nil, nil) when no document
// matches the caller's scope.
type SessionRepository interface {
	GetByIDForPatient(ctx context.Context, sessionID, patientID string) (*models.SessionDetail, error)
	GetByIDForDoctor(ctx context.Context, sessionID, doctorID string) (*models.SessionDetail, error)
	ListForPatient(ctx context.Context, patientID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error)
	ListForDoctor(ctx context.Context, doctorID string, page, itemsPerPage int) ([]models.SessionDetail, int64, error)

	// BookTransactionally inserts the session and flips its period from
	// Available to Occupied in one transaction. Returns ErrPeriodUnavailable
	// when a concurrent booking won the period.
	BookTransactionally(ctx context.Context, session *models.Session) error

	// CancelTransactionally moves the session into a cancelled state and
	// releases its period in one transaction.
	CancelTransactionally(ctx context.Context, sessionID, periodID, newStatus string, cancelledAt int64) error

	// ExpireDueTransactionally bulk-cancels every Created session whose
	// payment deadline has passed and releases the matching periods, all in
	// one transaction. Returns the number of sessions transitioned.
	ExpireDueTransactionally(ctx context.Context, now int64) (int64, error)

	EnsureIndexes() error
}

type mongoSessionRepo struct {
	coll        *mongo.Collection
	periodColl  *mongo.Collection
	patientColl *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	db := database.DB()
	return &mongoSessionRepo{
		coll:        db.Collection("sessions"),
		periodColl:  db.Collection("periods"),
		patientColl: db.Collection("patients"),
	}
}
