package handler

import (
	"context"

	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/response"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

func (s *PostActionHandler) LikePost(c *gin.Context) {
	s.toggle(c, s.actionSvc.LikePost, "Post liked successfully")
}

func (s *PostActionHandler) UnlikePost(c *gin.Context) {
	s.toggle(c, s.actionSvc.UnlikePost, "Post unliked successfully")
}

func (s *PostActionHandler) BookmarkPost(c *gin.Context) {
	s.toggle(c, s.actionSvc.BookmarkPost, "Post bookmarked successfully")
}

func (s *PostActionHandler) UnbookmarkPost(c *gin.Context) {
	s.toggle(c, s.actionSvc.UnbookmarkPost, "Post unbookmarked successfully")
}

func (s *PostActionHandler) GetBookmarkedPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	skip, limit := query.OffsetParams(c.Query("startIndex"), c.Query("limit"))

	result, err := s.actionSvc.GetBookmarkedPosts(c.Request.Context(), userID, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "Bookmarked posts fetched successfully")
}

func (s *PostActionHandler) toggle(c *gin.Context, fn func(ctx context.Context, userID, postID string) error, message string) {
	userID := c.GetString("user_id")
	postID := c.Param("postId")

	if err := fn(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil, message)
}
