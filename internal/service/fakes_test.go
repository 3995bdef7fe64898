package service

import (
	"context"
	"time"

	"github.com/amansaroj0309/mern-blog-app/internal/model"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"

	"go.mongodb.org/mongo-driver/bson"
)

// 内存版仓储，membership 更新语义与 Mongo 的 $push/$pull/$inc 一致

type fakePostRepo struct {
	posts   map[string]*model.Post
	found   []*model.Post
	total   int64
	lastMon int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*model.Post{}}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) (*model.Post, error) {
	return post, nil
}

func (f *fakePostRepo) GetPostByID(_ context.Context, id string) (*model.Post, error) {
	return f.posts[id], nil
}

func (f *fakePostRepo) GetPostByTitle(_ context.Context, title string) (*model.Post, error) {
	for _, p := range f.posts {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) FindPosts(_ context.Context, _ query.PostQuery) ([]*model.Post, error) {
	return f.found, nil
}

func (f *fakePostRepo) CountPosts(_ context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		return f.total, nil
	}
	return f.lastMon, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, id string, set bson.M) (*model.Post, error) {
	post := f.posts[id]
	if post == nil {
		return nil, nil
	}
	if v, ok := set["title"].(string); ok {
		post.Title = v
	}
	if v, ok := set["slug"].(string); ok {
		post.Slug = v
	}
	return post, nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id string) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) AddMembership(_ context.Context, postID, field, _, userID string) error {
	post := f.posts[postID]
	if field == "likes" {
		post.Likes = append(post.Likes, userID)
		post.NumberOfLikes++
	} else {
		post.Bookmarks = append(post.Bookmarks, userID)
		post.NumberOfBookmarks++
	}
	return nil
}

func (f *fakePostRepo) RemoveMembership(_ context.Context, postID, field, _, userID string) error {
	post := f.posts[postID]
	if field == "likes" {
		post.Likes = remove(post.Likes, userID)
		post.NumberOfLikes--
	} else {
		post.Bookmarks = remove(post.Bookmarks, userID)
		post.NumberOfBookmarks--
	}
	return nil
}

func (f *fakePostRepo) FindTrending(_ context.Context, _ time.Time, _, _ int64) ([]bson.M, error) {
	return []bson.M{}, nil
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindUsers(_ context.Context, _ bson.D, _, _ int64) ([]*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, id string, set bson.M) (*model.User, error) {
	user := f.users[id]
	if user == nil {
		return nil, nil
	}
	if v, ok := set["userName"].(string); ok {
		user.Username = v
	}
	if v, ok := set["email"].(string); ok {
		user.Email = v
	}
	if v, ok := set["profilePicture"].(string); ok {
		user.ProfilePicture = v
	}
	return user, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeUserRepo) PushRelation(_ context.Context, userID, field, memberID string) (*model.User, error) {
	user := f.users[userID]
	if user == nil {
		return nil, nil
	}
	if field == "following" {
		user.Following = append(user.Following, memberID)
	} else {
		user.Followers = append(user.Followers, memberID)
	}
	return user, nil
}

func (f *fakeUserRepo) PullRelation(_ context.Context, userID, field, memberID string) (*model.User, error) {
	user := f.users[userID]
	if user == nil {
		return nil, nil
	}
	if field == "following" {
		user.Following = remove(user.Following, memberID)
	} else {
		user.Followers = remove(user.Followers, memberID)
	}
	return user, nil
}
