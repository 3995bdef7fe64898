package service

import (
	"context"

	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/model"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"
	"github.com/amansaroj0309/mern-blog-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// PostActionService 点赞/收藏的成员关系切换。成员数组是事实来源，
// 前置检查保证每个 (用户, 帖子) 对至多一条活跃关系；
// 重复添加/移除返回冲突错误而不是静默成功。
type PostActionService interface {
	LikePost(ctx context.Context, userID, postID string) error
	UnlikePost(ctx context.Context, userID, postID string) error
	BookmarkPost(ctx context.Context, userID, postID string) error
	UnbookmarkPost(ctx context.Context, userID, postID string) error

	GetBookmarkedPosts(ctx context.Context, userID string, skip, limit int64) (*dto.BookmarkFeedDTO, error)
}

type postActionServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostActionService(postRepo repository.PostRepo) PostActionService {
	return &postActionServiceImpl{postRepo: postRepo}
}

func (s *postActionServiceImpl) LikePost(ctx context.Context, userID, postID string) error {
	post, err := s.getPostCheck(ctx, postID)
	if err != nil {
		return err
	}
	if post.HasLike(userID) {
		return ErrAlreadyLiked
	}
	return s.postRepo.AddMembership(ctx, postID, "likes", "numberOfLikes", userID)
}

func (s *postActionServiceImpl) UnlikePost(ctx context.Context, userID, postID string) error {
	post, err := s.getPostCheck(ctx, postID)
	if err != nil {
		return err
	}
	if !post.HasLike(userID) {
		return ErrNotLiked
	}
	return s.postRepo.RemoveMembership(ctx, postID, "likes", "numberOfLikes", userID)
}

func (s *postActionServiceImpl) BookmarkPost(ctx context.Context, userID, postID string) error {
	post, err := s.getPostCheck(ctx, postID)
	if err != nil {
		return err
	}
	if post.HasBookmark(userID) {
		return ErrAlreadyBookmarked
	}
	return s.postRepo.AddMembership(ctx, postID, "bookmarks", "numberOfBookmarks", userID)
}

func (s *postActionServiceImpl) UnbookmarkPost(ctx context.Context, userID, postID string) error {
	post, err := s.getPostCheck(ctx, postID)
	if err != nil {
		return err
	}
	if !post.HasBookmark(userID) {
		return ErrNotBookmarked
	}
	return s.postRepo.RemoveMembership(ctx, postID, "bookmarks", "numberOfBookmarks", userID)
}

func (s *postActionServiceImpl) GetBookmarkedPosts(ctx context.Context, userID string, skip, limit int64) (*dto.BookmarkFeedDTO, error) {
	filter := bson.M{"bookmarks": userID}

	posts, err := s.postRepo.FindPosts(ctx, query.PostQuery{
		Filter: filter,
		Sort:   bson.D{{Key: "createdAt", Value: -1}},
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.BookmarkFeedDTO{Posts: posts, TotalBookmarks: total}, nil
}

func (s *postActionServiceImpl) getPostCheck(ctx context.Context, postID string) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}
