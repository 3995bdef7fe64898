package handler

import (
	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/response"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedOk(c, gin.H{"post": post}, "post has been created successfully")
}

func (s *PostHandler) GetPosts(c *gin.Context) {
	result, err := s.postSvc.GetPosts(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "success")
}

func (s *PostHandler) GetAllPosts(c *gin.Context) {
	result, err := s.postSvc.GetAllPosts(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "success")
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	actorID := c.GetString("user_id")
	postID := c.Param("postId")
	pathUserID := c.Param("userId")

	var req dto.UpdatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), actorID, pathUserID, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedOk(c, post, "post has been updated successfully")
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	actorID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")
	postID := c.Param("postId")
	pathUserID := c.Param("userId")

	if err := s.postSvc.DeletePost(c.Request.Context(), actorID, isAdmin, pathUserID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "The post has been deleted")
}

func (s *PostHandler) GetFollowedUsersPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	skip, limit := query.OffsetParams(c.Query("startIndex"), c.Query("limit"))

	result, err := s.postSvc.GetFollowedUsersPosts(c.Request.Context(), userID, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "Followed users posts fetched successfully")
}

func (s *PostHandler) GetTrendingPosts(c *gin.Context) {
	skip, limit := query.OffsetParams(c.Query("startIndex"), c.Query("limit"))

	result, err := s.postSvc.GetTrendingPosts(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "Trending posts fetched successfully")
}

// listParams 查询参数原样透传给组合器，空串表示未提供
func listParams(c *gin.Context) query.ListParams {
	return query.ListParams{
		UserID:     c.Query("userId"),
		SearchTerm: c.Query("searchTerm"),
		Title:      c.Query("title"),
		Slug:       c.Query("slug"),
		Category:   c.Query("category"),
		PostID:     c.Query("postId"),
		Sort:       c.Query("sort"),
		Select:     c.Query("select"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	}
}
