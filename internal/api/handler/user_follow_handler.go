package handler

import (
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/response"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("userId")

	counts, err := s.userFollowSvc.FollowUser(c.Request.Context(), actorID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts, "User followed successfully")
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("userId")

	counts, err := s.userFollowSvc.UnfollowUser(c.Request.Context(), actorID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts, "User unfollowed successfully")
}
