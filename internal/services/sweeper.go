package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/studyring/reputation-backend/internal/config"
	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/pkg/logger"
)

// systemActor is the journal actor recorded for scheduler-driven commands.
const systemActor = ledger.AccountID(0)

// NewMaintenanceProcessor returns the executor the task queue and worker
// run maintenance tasks through.
func NewMaintenanceProcessor(ledgerSvc *LedgerService) func(context.Context, *MaintenanceTask) error {
	return func(ctx context.Context, task *MaintenanceTask) error {
		switch task.Type {
		case TaskTypeExpire:
			_, err := ledgerSvc.ExpireOldRatings(systemActor, "", task.Limit)
			return err
		case TaskTypeRecalculate:
			_, err := ledgerSvc.ForceRecalculate(systemActor, "", ledger.AccountID(task.Account))
			return err
		default:
			return fmt.Errorf("unknown maintenance task type: %s", task.Type)
		}
	}
}

// SweeperService periodically enqueues bounded expire sweeps so rating
// expiry does not depend on accounts being read. It is the external
// scheduler the engine's batch mode exists for.
type SweeperService struct {
	scheduler  *cron.Cron
	queue      TaskQueue
	spec       string
	batchLimit int
}

func NewSweeperService(queue TaskQueue, cfg *config.LedgerConfig) *SweeperService {
	return &SweeperService{
		queue:      queue,
		spec:       cfg.SweepCron,
		batchLimit: cfg.SweepBatchLimit,
	}
}

// Start schedules the sweep. Invalid cron specs are reported, not fatal;
// sweeping can still be triggered through the maintenance endpoint.
func (s *SweeperService) Start() {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.spec, func() {
		if err := s.queue.Enqueue(&MaintenanceTask{Type: TaskTypeExpire, Limit: s.batchLimit}); err != nil {
			logger.Errorf("[Sweeper] Failed to enqueue sweep: %v", err)
		}
	})
	if err != nil {
		logger.Errorf("[Sweeper] Invalid cron spec %q: %v", s.spec, err)
		return
	}
	s.scheduler.Start()
	logger.Infof("[Sweeper] Scheduled expire sweep (cron: %s, batch: %d)", s.spec, s.batchLimit)
}

// Stop halts the schedule.
func (s *SweeperService) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
