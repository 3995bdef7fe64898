package service

import (
	"context"

	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/repository"
)

type UserFollowService interface {
	FollowUser(ctx context.Context, actorID, targetID string) (*dto.FollowCountsDTO, error)
	UnfollowUser(ctx context.Context, actorID, targetID string) (*dto.FollowCountsDTO, error)
}

type userFollowServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserFollowService(userRepo repository.UserRepo) UserFollowService {
	return &userFollowServiceImpl{userRepo: userRepo}
}

// FollowUser 两次独立的单文档写入（先写发起方 following，
// 再写目标方 followers），不跨文档开事务；两写之间崩溃会留下
// 不对称关系，属于接受的不一致窗口。
func (s *userFollowServiceImpl) FollowUser(ctx context.Context, actorID, targetID string) (*dto.FollowCountsDTO, error) {
	if actorID == targetID {
		return nil, ErrFollowSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	actor, err := s.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}
	if actor.IsFollowing(targetID) {
		return nil, ErrAlreadyFollowing
	}

	if _, err := s.userRepo.PushRelation(ctx, actorID, "following", targetID); err != nil {
		return nil, err
	}
	updated, err := s.userRepo.PushRelation(ctx, targetID, "followers", actorID)
	if err != nil {
		return nil, err
	}

	return &dto.FollowCountsDTO{
		FollowersCount: len(updated.Followers),
		FollowingCount: len(updated.Following),
	}, nil
}

// UnfollowUser 与 FollowUser 对称的两次写入
func (s *userFollowServiceImpl) UnfollowUser(ctx context.Context, actorID, targetID string) (*dto.FollowCountsDTO, error) {
	if actorID == targetID {
		return nil, ErrUnfollowSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	actor, err := s.userRepo.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}
	if !actor.IsFollowing(targetID) {
		return nil, ErrNotFollowing
	}

	if _, err := s.userRepo.PullRelation(ctx, actorID, "following", targetID); err != nil {
		return nil, err
	}
	updated, err := s.userRepo.PullRelation(ctx, targetID, "followers", actorID)
	if err != nil {
		return nil, err
	}

	return &dto.FollowCountsDTO{
		FollowersCount: len(updated.Followers),
		FollowingCount: len(updated.Following),
	}, nil
}
