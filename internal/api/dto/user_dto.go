package dto

import (
	"time"

	"github.com/amansaroj0309/mern-blog-app/internal/model"
)

// UpdateUserDTO 所有字段可选，只更新给出的字段
type UpdateUserDTO struct {
	Username       string `json:"userName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
}

type UserListDTO struct {
	Users          []*model.User `json:"users"`
	TotalUsers     int64         `json:"totalUsers"`
	LastMonthUsers int64         `json:"lastMonthUsers"`
}

// ProfileCardDTO 公开主页的用户卡片，只暴露计数不暴露成员列表
type ProfileCardDTO struct {
	ID             string    `json:"_id"`
	Username       string    `json:"userName"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
	IsAdmin        bool      `json:"isAdmin"`
	CreatedAt      time.Time `json:"createdAt"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
}

type ProfileDTO struct {
	User        ProfileCardDTO `json:"user"`
	Posts       []*model.Post  `json:"posts"`
	TotalPosts  int64          `json:"totalPosts"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int64          `json:"totalPages"`
}

// FollowCountsDTO 关注/取关后回报目标用户的最新计数
type FollowCountsDTO struct {
	FollowersCount int `json:"followersCount"`
	FollowingCount int `json:"followingCount"`
}
