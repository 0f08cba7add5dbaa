// File: cron/sweeper.go
package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"docta-server/config"
	"docta-server/utils"
)

// sessionExpirer is the slice of the session repository the sweeper needs.
type sessionExpirer interface {
	ExpireDueTransactionally(ctx context.Context, now int64) (int64, error)
}

// StartSessionCleanup schedules the expiry sweeper: every tick it reaps all
// Created sessions past their payment deadline and releases their periods in
// one transaction. A failed run is logged and retried wholesale on the next
// tick; a session already out of Created is simply not matched again, so
// re-running is harmless.
func StartSessionCleanup(repo sessionExpirer) *cron.Cron {
	c := cron.New()
	schedule := fmt.Sprintf("@every %dm", config.SessionCleanupIntervalMinutes())
	_, err := c.AddFunc(schedule, func() {
		runSessionCleanup(repo)
	})
	if err != nil {
		utils.GetLogger().Fatal("Failed to schedule session cleanup", zap.Error(err))
	}
	c.Start()
	utils.GetLogger().Info("Session cleanup scheduled", zap.String("schedule", schedule))
	return c
}

func runSessionCleanup(repo sessionExpirer) {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	expired, err := repo.ExpireDueTransactionally(ctx, time.Now().UnixMilli())
	if err != nil {
		// Not caller-facing: log and let the next tick retry the whole run.
		logger.Error("Session cleanup run failed", zap.Error(err))
		return
	}
	if expired > 0 {
		logger.Info("Expired unpaid sessions", zap.Int64("count", expired))
	}
}
