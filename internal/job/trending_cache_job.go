package job

import (
	"context"
	log "log/slog"
	"time"

	"github.com/amansaroj0309/mern-blog-app/internal/pkg/logger"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/google/uuid"
)

// TrendingCacheJob 周期性预热热门流的默认窗口缓存
type TrendingCacheJob struct {
	postSvc service.PostService
}

func NewTrendingCacheJob(postSvc service.PostService) *TrendingCacheJob {
	return &TrendingCacheJob{postSvc: postSvc}
}

func (s *TrendingCacheJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = context.WithValue(ctx, logger.TraceIDKey, "cron-"+uuid.New().String())

	if err := s.postSvc.RefreshTrendingCache(ctx); err != nil {
		log.ErrorContext(ctx, "Trending cache refresh failed", "err", err)
		return
	}
	log.InfoContext(ctx, "Trending cache refreshed")
}
