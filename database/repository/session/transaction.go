// File: database/repository/session/transaction.go
package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"docta-server/models"
)

// ErrPeriodUnavailable signals that the period was occupied or deleted by
// the time the transaction tried to claim it.
var ErrPeriodUnavailable = errors.New("period is not available")

// ErrSessionNotCancellable signals that the session left Created/Paid by the
// time the transaction tried to cancel it.
var ErrSessionNotCancellable = errors.New("session is not cancellable")

// withTransaction runs fn inside a Mongo multi-document transaction,
// aborting on any error so the dual-write commits whole or not at all.
func (r *mongoSessionRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

func (r *mongoSessionRepo) BookTransactionally(ctx context.Context, session *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, session); err != nil {
			return fmt.Errorf("insert session failed: %w", err)
		}

		// The status condition in the filter is what makes two concurrent
		// bookings of the same period mutually exclusive: the loser matches
		// nothing and the whole transaction aborts.
		filter := bson.M{
			"id":        session.PeriodID,
			"isDeleted": false,
			"status":    models.PeriodStatusAvailable,
		}
		update := bson.M{"$set": bson.M{"status": models.PeriodStatusOccupied}}

		res, err := r.periodColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("occupy period failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrPeriodUnavailable
		}
		return nil
	})
}

func (r *mongoSessionRepo) CancelTransactionally(ctx context.Context, sessionID, periodID, newStatus string, cancelledAt int64) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		// The status condition keeps a stale cancel from overwriting a
		// terminal state: if the sweeper (or the other party) got here first
		// the update matches nothing and the period is left alone.
		sessionFilter := bson.M{
			"id": sessionID,
			"status": bson.M{"$in": bson.A{
				models.SessionStatusCreated,
				models.SessionStatusPaid,
			}},
		}
		sessionUpdate := bson.M{"$set": bson.M{
			"status":      newStatus,
			"cancelledAt": cancelledAt,
		}}
		res, err := r.coll.UpdateOne(sc, sessionFilter, sessionUpdate)
		if err != nil {
			return fmt.Errorf("cancel session failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSessionNotCancellable
		}

		periodUpdate := bson.M{"$set": bson.M{"status": models.PeriodStatusAvailable}}
		if _, err := r.periodColl.UpdateOne(sc, bson.M{"id": periodID}, periodUpdate); err != nil {
			return fmt.Errorf("release period failed: %w", err)
		}
		return nil
	})
}

func (r *mongoSessionRepo) ExpireDueTransactionally(ctx context.Context, now int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var expired int64
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		// Collect the due sessions first so the period release targets
		// exactly the slots being freed.
		filter := bson.M{
			"status":    models.SessionStatusCreated,
			"expiresAt": bson.M{"$lt": now},
		}
		cursor, err := r.coll.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("find expired sessions failed: %w", err)
		}
		var due []models.Session
		if err := cursor.All(sc, &due); err != nil {
			return fmt.Errorf("decode expired sessions failed: %w", err)
		}
		if len(due) == 0 {
			return nil
		}

		sessionIDs := make([]string, len(due))
		periodIDs := make([]string, len(due))
		for i, s := range due {
			sessionIDs[i] = s.ID
			periodIDs[i] = s.PeriodID
		}

		// Re-filter on status so a session paid between the read and this
		// write is left untouched.
		sessionFilter := bson.M{
			"id":     bson.M{"$in": sessionIDs},
			"status": models.SessionStatusCreated,
		}
		sessionUpdate := bson.M{"$set": bson.M{
			"status":      models.SessionStatusCancelledDueToTimeout,
			"cancelledAt": now,
		}}
		res, err := r.coll.UpdateMany(sc, sessionFilter, sessionUpdate)
		if err != nil {
			return fmt.Errorf("expire sessions failed: %w", err)
		}

		periodFilter := bson.M{"id": bson.M{"$in": periodIDs}}
		periodUpdate := bson.M{"$set": bson.M{"status": models.PeriodStatusAvailable}}
		if _, err := r.periodColl.UpdateMany(sc, periodFilter, periodUpdate); err != nil {
			return fmt.Errorf("release expired periods failed: %w", err)
		}

		expired = res.ModifiedCount
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}
