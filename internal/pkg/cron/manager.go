package cron

import (
	log "log/slog"

	"github.com/amansaroj0309/mern-blog-app/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	trendingJob *job.TrendingCacheJob
}

func NewCronManager(trendingJob *job.TrendingCacheJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		trendingJob: trendingJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 5m", s.trendingJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
