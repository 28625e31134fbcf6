package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"fundvault.backend/internal/usecases"
	"fundvault.backend/pkg/logger"
)

// MilestoneFailureSweep periodically reports active milestones whose deadline
// has passed. It goes through the same ReportMilestoneFailure operation any
// caller would use; the sweep only removes the need for a human to notice.
type MilestoneFailureSweep struct {
	verification *usecases.VerificationUsecase
	interval     time.Duration
	stop         chan struct{}
}

func NewMilestoneFailureSweep(verification *usecases.VerificationUsecase) *MilestoneFailureSweep {
	return &MilestoneFailureSweep{
		verification: verification,
		interval:     30 * time.Second,
		stop:         make(chan struct{}),
	}
}

func (j *MilestoneFailureSweep) Start(ctx context.Context) {
	logger.Info(ctx, "starting milestone failure sweep", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "milestone failure sweep stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "milestone failure sweep stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *MilestoneFailureSweep) Stop() {
	close(j.stop)
}

func (j *MilestoneFailureSweep) sweep(ctx context.Context) {
	overdue, err := j.verification.ListOverdueMilestones(ctx, usecases.OverdueSweepBatchSize)
	if err != nil {
		logger.Error(ctx, "failed to list overdue milestones", zap.Error(err))
		return
	}

	for _, m := range overdue {
		if err := j.verification.ReportMilestoneFailure(ctx, m.ProjectID, m.Index); err != nil {
			// Someone may have reported it first; re-check on the next tick.
			logger.Warn(ctx, "failed to report overdue milestone",
				zap.Uint64("project_id", m.ProjectID),
				zap.Uint32("index", m.Index),
				zap.Error(err))
			continue
		}
		logger.Info(ctx, "reported overdue milestone",
			zap.Uint64("project_id", m.ProjectID),
			zap.Uint32("index", m.Index))
	}
}
