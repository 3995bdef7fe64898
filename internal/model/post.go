package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPostImage = "https://www.salesforce.com/ca/blog/wp-content/uploads/sites/12/2023/10/anatomy-of-a-blog-post-deconstructed-open-graph.jpg"
	DefaultCategory  = "uncategorized"
)

// Post 博客帖子文档。likes/bookmarks 保存点赞、收藏用户的 ID，
// numberOfLikes/numberOfBookmarks 是与之同步维护的冗余计数。
type Post struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID            string             `bson:"userId" json:"userId"`
	Title             string             `bson:"title" json:"title"`
	Slug              string             `bson:"slug" json:"slug"`
	Content           string             `bson:"content" json:"content"`
	Image             string             `bson:"image" json:"image"`
	Category          string             `bson:"category" json:"category"`
	Likes             []string           `bson:"likes" json:"likes"`
	NumberOfLikes     int64              `bson:"numberOfLikes" json:"numberOfLikes"`
	Bookmarks         []string           `bson:"bookmarks" json:"bookmarks"`
	NumberOfBookmarks int64              `bson:"numberOfBookmarks" json:"numberOfBookmarks"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *Post) HasLike(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Post) HasBookmark(userID string) bool {
	for _, id := range p.Bookmarks {
		if id == userID {
			return true
		}
	}
	return false
}
