package dto

import "github.com/amansaroj0309/mern-blog-app/internal/model"

type SignupDTO struct {
	Username string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SigninDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResultDTO 登录/注册结果：用户信息与 Bearer Token
type AuthResultDTO struct {
	User        *model.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}
