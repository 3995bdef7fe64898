package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/amansaroj0309/mern-blog-app/internal/model"
)

func followFixture() (*fakeUserRepo, UserFollowService) {
	repo := newFakeUserRepo()
	repo.users["a"] = &model.User{Username: "useralpha", Followers: []string{}, Following: []string{}}
	repo.users["b"] = &model.User{Username: "userbravo", Followers: []string{}, Following: []string{}}
	return repo, NewUserFollowService(repo)
}

func TestFollowSelf(t *testing.T) {
	_, svc := followFixture()

	if _, err := svc.FollowUser(context.Background(), "a", "a"); !errors.Is(err, ErrFollowSelf) {
		t.Errorf("follow self = %v, want ErrFollowSelf", err)
	}
	if _, err := svc.UnfollowUser(context.Background(), "a", "a"); !errors.Is(err, ErrUnfollowSelf) {
		t.Errorf("unfollow self = %v, want ErrUnfollowSelf", err)
	}
}

func TestFollowMissingTarget(t *testing.T) {
	_, svc := followFixture()

	if _, err := svc.FollowUser(context.Background(), "a", "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("follow missing = %v, want ErrUserNotFound", err)
	}
}

func TestFollowMutualSymmetry(t *testing.T) {
	repo, svc := followFixture()
	ctx := context.Background()

	counts, err := svc.FollowUser(ctx, "a", "b")
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if counts.FollowersCount != 1 {
		t.Errorf("followersCount = %d, want 1", counts.FollowersCount)
	}

	if !repo.users["a"].IsFollowing("b") {
		t.Error("a.following should contain b")
	}
	if repo.users["b"].Followers[0] != "a" {
		t.Error("b.followers should contain a")
	}

	if _, err := svc.FollowUser(ctx, "a", "b"); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("double follow = %v, want ErrAlreadyFollowing", err)
	}
}

// 关注后取关，双方集合回到原状
func TestUnfollowRestoresState(t *testing.T) {
	repo, svc := followFixture()
	ctx := context.Background()

	beforeA := append([]string(nil), repo.users["a"].Following...)
	beforeB := append([]string(nil), repo.users["b"].Followers...)

	if _, err := svc.FollowUser(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UnfollowUser(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(repo.users["a"].Following, beforeA) {
		t.Errorf("a.following = %v, want %v", repo.users["a"].Following, beforeA)
	}
	if !reflect.DeepEqual(repo.users["b"].Followers, beforeB) {
		t.Errorf("b.followers = %v, want %v", repo.users["b"].Followers, beforeB)
	}

	if _, err := svc.UnfollowUser(ctx, "a", "b"); !errors.Is(err, ErrNotFollowing) {
		t.Fatalf("unfollow again = %v, want ErrNotFollowing", err)
	}
}
