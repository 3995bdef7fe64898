package handler

import (
	"strconv"

	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/response"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) GetUser(c *gin.Context) {
	user, err := s.userSvc.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user, "success")
}

func (s *UserHandler) GetUserProfile(c *gin.Context) {
	username := c.Param("username")
	page := atoiDefault(c.Query("page"), 1)
	limit := atoiDefault(c.Query("limit"), 9)

	profile, err := s.userSvc.GetUserProfile(c.Request.Context(), username, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile, "User profile fetched successfully")
}

func (s *UserHandler) GetUsers(c *gin.Context) {
	skip, limit := query.OffsetParams(c.Query("startIndex"), c.Query("limit"))

	result, err := s.userSvc.GetUsers(c.Request.Context(), skip, limit, c.Query("sort"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "Users")
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("userId")

	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := s.userSvc.UpdateUser(c.Request.Context(), actorID, targetID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"updatedUser": updated}, "user successfully updated")
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	actorID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")
	targetID := c.Param("userId")

	if err := s.userSvc.DeleteUser(c.Request.Context(), actorID, isAdmin, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{}, "user has been deleted")
}

func (s *UserHandler) Logout(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("userId")

	if actorID != targetID {
		response.Error(c, service.ErrLogoutForbidden)
		return
	}

	if err := s.userSvc.Logout(c.Request.Context(), c.GetString("token_signature")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"userId": actorID}, "user has been signed out")
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
