package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"hrdesk/internal/pkg/logger"
)

// ============================================================
// Background jobs: idle workspace eviction + expired code purge
// ============================================================

// CodePurger deletes one-time codes past their expiry
type CodePurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// CronConfig holds job schedules in robfig/cron syntax
type CronConfig struct {
	EvictSchedule string
	PurgeSchedule string
	IdleTTL       time.Duration
}

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron       *cron.Cron
	registry   *WorkspaceRegistry
	purger     CodePurger
	cfg        CronConfig
	log        *logger.Logger
	jobTimeout time.Duration
}

// NewCronService registers the jobs. purger may be nil when codes are not stored locally.
func NewCronService(registry *WorkspaceRegistry, purger CodePurger, cfg CronConfig, log *logger.Logger) (*CronService, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &CronService{
		cron:       cron.New(),
		registry:   registry,
		purger:     purger,
		cfg:        cfg,
		log:        log,
		jobTimeout: 30 * time.Second,
	}

	if _, err := s.cron.AddFunc(cfg.EvictSchedule, s.EvictIdleWorkspaces); err != nil {
		return nil, err
	}
	if purger != nil {
		if _, err := s.cron.AddFunc(cfg.PurgeSchedule, s.PurgeExpiredCodes); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start launches the scheduler
func (s *CronService) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("cron started")
}

// Stop waits for running jobs to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("cron stopped")
}

// EvictIdleWorkspaces drops workspaces idle for longer than the configured TTL
func (s *CronService) EvictIdleWorkspaces() {
	n := s.registry.EvictIdle(s.cfg.IdleTTL)
	if n > 0 {
		s.log.Info().Int("evicted", n).Int("remaining", s.registry.Len()).Msg("idle workspaces evicted")
	}
}

// PurgeExpiredCodes removes expired one-time codes
func (s *CronService) PurgeExpiredCodes() {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("purge expired codes failed")
		return
	}
	if n > 0 {
		s.log.Info().Int64("purged", n).Msg("expired codes purged")
	}
}
