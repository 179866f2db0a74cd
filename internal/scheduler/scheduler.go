package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/config"
	"github.com/resqcart/aiml-service/internal/domain/models"
	"github.com/resqcart/aiml-service/internal/repository/mongodb"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	repo   mongodb.Repository
	cfg    config.Config
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, repo mongodb.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	_, err := s.cron.AddFunc(s.cfg.Audit.CronSchedule, s.logDailySummary)
	if err != nil {
		s.logger.Error("failed to schedule audit summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) logDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	counts, err := s.repo.CountActionsSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		s.logger.Error("failed to summarize pricing decisions", zap.Error(err))
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	s.logger.Info("daily pricing decision summary",
		zap.Int64("total", total),
		zap.Int64("sold", counts[models.ActionSell]),
		zap.Int64("donated", counts[models.ActionDonate]),
		zap.Int64("dumped", counts[models.ActionDump]))
}
