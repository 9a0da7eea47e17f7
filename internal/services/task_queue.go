package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/studyring/reputation-backend/internal/config"
	"github.com/studyring/reputation-backend/pkg/logger"
)

const (
	TaskTypeExpire      = "maintenance:expire"
	TaskTypeRecalculate = "maintenance:recalculate"
)

// MaintenanceTask is an amortizable piece of ledger housekeeping: an
// expire sweep batch or a forced recalculation for one account.
type MaintenanceTask struct {
	Type    string `json:"type"`
	Limit   int    `json:"limit,omitempty"`
	Account uint64 `json:"account,omitempty"`
}

// TaskQueue defines the interface for maintenance task processing.
type TaskQueue interface {
	// Enqueue adds a task to the queue.
	Enqueue(task *MaintenanceTask) error
	// IsAsync returns true if the queue processes tasks asynchronously.
	IsAsync() bool
	// Close gracefully shuts down the queue.
	Close() error
}

var (
	globalTaskQueue TaskQueue
	taskQueueOnce   sync.Once
)

// InitTaskQueue initializes the global task queue based on config: Redis
// when enabled and reachable, synchronous in-process otherwise.
func InitTaskQueue(cfg *config.Config) TaskQueue {
	taskQueueOnce.Do(func() {
		if cfg.Redis.Enabled {
			queue, err := NewAsyncQueue(&cfg.Redis)
			if err != nil {
				logger.Infof("[TaskQueue] Redis unavailable, falling back to sync mode: %v", err)
				globalTaskQueue = NewSyncQueue()
			} else {
				logger.Infof("[TaskQueue] Async queue initialized with Redis at %s", cfg.Redis.Addr)
				globalTaskQueue = queue
			}
		} else {
			logger.Infof("[TaskQueue] Sync queue initialized (Redis disabled)")
			globalTaskQueue = NewSyncQueue()
		}
	})
	return globalTaskQueue
}

// GetTaskQueue returns the global task queue instance.
func GetTaskQueue() TaskQueue {
	return globalTaskQueue
}

// AsyncQueue implements TaskQueue using asynq (Redis-based).
type AsyncQueue struct {
	client *asynq.Client
}

// NewAsyncQueue creates a new Redis-based async queue, verifying the
// connection before use.
func NewAsyncQueue(cfg *config.RedisConfig) (*AsyncQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()
	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

func (q *AsyncQueue) Enqueue(task *MaintenanceTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	t := asynq.NewTask(task.Type, payload)
	info, err := q.client.Enqueue(t,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Debug().Str("task_id", info.ID).Str("type", task.Type).Msg("maintenance task enqueued")
	return nil
}

func (q *AsyncQueue) IsAsync() bool { return true }

func (q *AsyncQueue) Close() error { return q.client.Close() }

// SyncQueue implements TaskQueue by running tasks inline.
type SyncQueue struct {
	processor func(context.Context, *MaintenanceTask) error
}

func NewSyncQueue() *SyncQueue {
	return &SyncQueue{}
}

// SetProcessor sets the function that executes maintenance tasks.
func (q *SyncQueue) SetProcessor(processor func(context.Context, *MaintenanceTask) error) {
	q.processor = processor
}

func (q *SyncQueue) Enqueue(task *MaintenanceTask) error {
	if q.processor == nil {
		logger.Warnf("[TaskQueue] No processor set, dropping task %s", task.Type)
		return nil
	}
	return q.processor(context.Background(), task)
}

func (q *SyncQueue) IsAsync() bool { return false }

func (q *SyncQueue) Close() error { return nil }
