// File: events/publisher.go
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"docta-server/config"
	"docta-server/models"
	"docta-server/utils"
)

// TypeInitiateRefund is the task type consumed by the payment subsystem.
const TypeInitiateRefund = "refund:initiate"

// Publisher hands refund-initiation events to the downstream payment
// subsystem. Delivery is at-least-once; consumers dedupe by session id.
type Publisher interface {
	PublishInitiateRefund(ctx context.Context, evt models.InitiateRefundEvent) error
}

// AsynqPublisher enqueues refund events on the Redis-backed task queue.
type AsynqPublisher struct {
	client *asynq.Client
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRefundQueueDB,
	}
}

// NewAsynqPublisher constructs the production publisher.
func NewAsynqPublisher() *AsynqPublisher {
	return &AsynqPublisher{client: asynq.NewClient(redisOpts())}
}

// PublishInitiateRefund enqueues the event. The task id is the session id,
// so re-publishing after a retry never produces a duplicate refund task.
func (p *AsynqPublisher) PublishInitiateRefund(ctx context.Context, evt models.InitiateRefundEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal refund event: %w", err)
	}

	task := asynq.NewTask(TypeInitiateRefund, payload)
	_, err = p.client.EnqueueContext(ctx, task,
		asynq.Queue("refunds"),
		asynq.TaskID(evt.SessionID),
		asynq.MaxRetry(10),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		// Already enqueued for this session; at-least-once is satisfied.
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue refund event: %w", err)
	}

	utils.GetLogger().Info("Refund event enqueued",
		zap.String("sessionId", evt.SessionID),
		zap.String("refundDirection", evt.RefundDirection),
	)
	return nil
}

// Close releases the underlying queue connection.
func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// MonitorRedisConnection pings Redis periodically to detect queue outages at
// runtime. Run it in its own goroutine.
func MonitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRefundQueueDB,
	})

	ctx := context.Background()
	logger := utils.GetLogger()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Refund queue Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
