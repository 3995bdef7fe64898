package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultProfilePicture = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

// User 用户文档。followers/following 互为镜像：A 关注 B 时
// A.following 包含 B，B.followers 包含 A（两次独立写入维护）。
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username       string             `bson:"userName" json:"userName"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	IsAdmin        bool               `bson:"isAdmin" json:"isAdmin"`
	Followers      []string           `bson:"followers" json:"followers"`
	Following      []string           `bson:"following" json:"following"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsFollowing(userID string) bool {
	for _, id := range u.Following {
		if id == userID {
			return true
		}
	}
	return false
}
