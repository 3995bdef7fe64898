package dto

import (
	"github.com/amansaroj0309/mern-blog-app/internal/model"

	"go.mongodb.org/mongo-driver/bson"
)

type CreatePostDTO struct {
	Title    string `json:"title" binding:"required" validate:"min=1,max=255"`
	Content  string `json:"content" binding:"required" validate:"min=1"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

type UpdatePostDTO struct {
	Title    string `json:"title" binding:"required" validate:"min=1,max=255"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// PostListDTO getposts 响应（分页档位 A，带窗口元数据）
type PostListDTO struct {
	Posts          []*model.Post `json:"posts"`
	TotalPosts     int64         `json:"totalPosts"`
	LastMonthPosts int64         `json:"lastMonthPosts"`
	PageNo         int           `json:"pageNo"`
	ItemRange      string        `json:"itemRange"`
	NbHits         int           `json:"nbHits"`
}

// PostListAllDTO getallposts 响应（分页档位 B）
type PostListAllDTO struct {
	Posts          []*model.Post `json:"posts"`
	TotalPosts     int64         `json:"totalPosts"`
	LastMonthPosts int64         `json:"lastMonthPosts"`
	PageNo         int           `json:"pageNo"`
	NbHits         int           `json:"nbHits"`
}

type BookmarkFeedDTO struct {
	Posts          []*model.Post `json:"posts"`
	TotalBookmarks int64         `json:"totalBookmarks"`
}

type FollowingFeedDTO struct {
	Posts      []*model.Post `json:"posts"`
	TotalPosts int64         `json:"totalPosts"`
}

// TrendingFeedDTO 热门流文档带聚合算出的 engagementScore 字段
type TrendingFeedDTO struct {
	Posts      []bson.M `json:"posts"`
	TotalPosts int64    `json:"totalPosts"`
}
