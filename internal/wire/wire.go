package wire

import (
	"github.com/amansaroj0309/mern-blog-app/internal/api"
	"github.com/amansaroj0309/mern-blog-app/internal/api/config"
	"github.com/amansaroj0309/mern-blog-app/internal/api/handler"
	"github.com/amansaroj0309/mern-blog-app/internal/job"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/cron"
	"github.com/amansaroj0309/mern-blog-app/internal/repository"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *mongo.Database
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepository(db)

	userService := service.NewUserService(userRepo, postRepo)
	userFollowService := service.NewUserFollowService(userRepo)
	postService := service.NewPostService(postRepo, userRepo)
	postActionService := service.NewPostActionService(postRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(userService),
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewTrendingCacheJob(postService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
