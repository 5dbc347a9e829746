package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/agrobooks/internal/config"
	"github.com/mamadbah2/agrobooks/internal/domain/models"
	"github.com/mamadbah2/agrobooks/internal/repository/mongodb"
	"github.com/mamadbah2/agrobooks/internal/service/dashboard"
)

// Scheduler runs the nightly snapshot job: compute the configured user's
// current day entry and persist it. The aggregation engine itself never
// persists anything; this job is the audit trail on top of it.
type Scheduler struct {
	cron         *cron.Cron
	dashboardSvc *dashboard.Service
	snapshots    mongodb.Repository
	cfg          config.SnapshotConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SnapshotConfig, dashboardSvc *dashboard.Service, snapshots mongodb.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("invalid timezone, scheduler falls back to local time", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:         cron.New(opts...),
		dashboardSvc: dashboardSvc,
		snapshots:    snapshots,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	if s.cfg.UserID == "" {
		s.logger.Info("no snapshot user configured, nightly snapshots disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.saveDailySnapshot); err != nil {
		s.logger.Error("failed to schedule snapshot job", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) saveDailySnapshot() {
	s.logger.Info("computing daily snapshot", zap.String("user_id", s.cfg.UserID))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entry, err := s.dashboardSvc.LatestEntry(ctx, dashboard.SeriesRequest{UserID: s.cfg.UserID})
	if err != nil {
		s.logger.Error("failed to compute daily snapshot", zap.Error(err))
		return
	}

	snapshot := models.DailySnapshot{
		UserID:      s.cfg.UserID,
		Date:        entry.Date,
		Revenue:     entry.Revenue.Total,
		COGS:        entry.COGS.Total,
		GrossProfit: entry.GrossProfit.Total,
		Expenses:    entry.Expenses.Total,
		NetProfit:   entry.NetProfit.Total,
		CreatedAt:   time.Now(),
	}

	if err := s.snapshots.SaveDailySnapshot(ctx, snapshot); err != nil {
		s.logger.Error("failed to save daily snapshot", zap.Error(err))
	} else {
		s.logger.Info("daily snapshot saved", zap.Time("date", snapshot.Date))
	}
}
