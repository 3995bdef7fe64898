package api

import (
	"net/http"

	"github.com/amansaroj0309/mern-blog-app/internal/api/middleware"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"statusCode": 200,
				"message":    "pong",
				"data":       nil,
			})
		})

		v1 := apiGroup.Group("/v1")

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/signup", group.AuthHandler.Signup)
			authGroup.POST("/signin", group.AuthHandler.Signin)
		}

		userGroup := v1.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.GET("/getuser/:userId", group.UserHandler.GetUser)
			userGroup.GET("/profile/:username", group.UserHandler.GetUserProfile)

			authed := userGroup.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.PUT("/update/:userId", group.UserHandler.UpdateUser)
				authed.DELETE("/delete/:userId", group.UserHandler.DeleteUser)
				authed.POST("/logout/:userId", group.UserHandler.Logout)
				authed.GET("/getusers", group.UserHandler.GetUsers)
				authed.POST("/follow/:userId", group.UserFollowHandler.Follow)
				authed.POST("/unfollow/:userId", group.UserFollowHandler.Unfollow)
			}
		}

		postGroup := v1.Group("/post")
		{
			postGroup.GET("/getposts", group.PostHandler.GetPosts)
			postGroup.GET("/getallposts", group.PostHandler.GetAllPosts)
			postGroup.GET("/discovery/trending", group.PostHandler.GetTrendingPosts)

			authed := postGroup.Group("")
			authed.Use(middleware.AuthMiddleware())
			{
				authed.POST("/create", group.PostHandler.CreatePost)
				authed.PUT("/updatepost/:postId/:userId", group.PostHandler.UpdatePost)
				authed.DELETE("/deletepost/:postId/:userId", group.PostHandler.DeletePost)

				authed.POST("/like/:postId", group.PostActionHandler.LikePost)
				authed.POST("/unlike/:postId", group.PostActionHandler.UnlikePost)
				authed.POST("/bookmark/:postId", group.PostActionHandler.BookmarkPost)
				authed.POST("/unbookmark/:postId", group.PostActionHandler.UnbookmarkPost)
				authed.GET("/bookmarks", group.PostActionHandler.GetBookmarkedPosts)
				authed.GET("/discovery/following", group.PostHandler.GetFollowedUsersPosts)
			}
		}
	}

	return r
}
