package handler

import (
	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/response"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/util"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userSvc service.UserService
}

func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

func (s *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedOk(c, result, "user has been created successfully")
}

func (s *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "user logged in successfully")
}
