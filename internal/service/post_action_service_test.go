package service

import (
	"context"
	"errors"
	"testing"

	"github.com/amansaroj0309/mern-blog-app/internal/model"
)

func TestLikeToggle(t *testing.T) {
	repo := newFakePostRepo()
	repo.posts["p1"] = &model.Post{Title: "t", Likes: []string{}}
	svc := NewPostActionService(repo)
	ctx := context.Background()

	if err := svc.LikePost(ctx, "u1", "p1"); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if err := svc.LikePost(ctx, "u1", "p1"); !errors.Is(err, ErrAlreadyLiked) {
		t.Fatalf("second like = %v, want ErrAlreadyLiked", err)
	}

	post := repo.posts["p1"]
	if post.NumberOfLikes != int64(len(post.Likes)) {
		t.Errorf("counter %d != set size %d", post.NumberOfLikes, len(post.Likes))
	}

	if err := svc.UnlikePost(ctx, "u1", "p1"); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if err := svc.UnlikePost(ctx, "u1", "p1"); !errors.Is(err, ErrNotLiked) {
		t.Fatalf("second unlike = %v, want ErrNotLiked", err)
	}

	if post.NumberOfLikes != 0 || len(post.Likes) != 0 {
		t.Errorf("post should be back to zero likes, got %d/%d", post.NumberOfLikes, len(post.Likes))
	}
}

// 计数始终等于成员集大小
func TestLikeCounterInvariant(t *testing.T) {
	repo := newFakePostRepo()
	repo.posts["p1"] = &model.Post{Likes: []string{}}
	svc := NewPostActionService(repo)
	ctx := context.Background()

	users := []string{"a", "b", "c", "d"}
	for _, u := range users {
		if err := svc.LikePost(ctx, u, "p1"); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.UnlikePost(ctx, "b", "p1"); err != nil {
		t.Fatal(err)
	}

	post := repo.posts["p1"]
	if post.NumberOfLikes != 3 || len(post.Likes) != 3 {
		t.Errorf("likes = %d/%d, want 3/3", post.NumberOfLikes, len(post.Likes))
	}
}

func TestBookmarkToggle(t *testing.T) {
	repo := newFakePostRepo()
	repo.posts["p1"] = &model.Post{Bookmarks: []string{}}
	svc := NewPostActionService(repo)
	ctx := context.Background()

	if err := svc.BookmarkPost(ctx, "u1", "p1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.BookmarkPost(ctx, "u1", "p1"); !errors.Is(err, ErrAlreadyBookmarked) {
		t.Fatalf("got %v, want ErrAlreadyBookmarked", err)
	}
	if err := svc.UnbookmarkPost(ctx, "u2", "p1"); !errors.Is(err, ErrNotBookmarked) {
		t.Fatalf("got %v, want ErrNotBookmarked", err)
	}
}

func TestToggleMissingPost(t *testing.T) {
	svc := NewPostActionService(newFakePostRepo())
	ctx := context.Background()

	if err := svc.LikePost(ctx, "u1", "nope"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("like missing = %v, want ErrPostNotFound", err)
	}
	if err := svc.UnbookmarkPost(ctx, "u1", "nope"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("unbookmark missing = %v, want ErrPostNotFound", err)
	}
}
