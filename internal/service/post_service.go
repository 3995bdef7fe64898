package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/model"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/consts"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/redis"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/slug"
	"github.com/amansaroj0309/mern-blog-app/internal/repository"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
)

// trendingCacheTTL 热门流默认窗口的缓存时长，由定时任务刷新
const trendingCacheTTL = 5 * time.Minute

type PostService interface {
	CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*model.Post, error)
	GetPosts(ctx context.Context, p query.ListParams) (*dto.PostListDTO, error)
	GetAllPosts(ctx context.Context, p query.ListParams) (*dto.PostListAllDTO, error)
	UpdatePost(ctx context.Context, actorID, pathUserID, postID string, req *dto.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, actorID string, actorAdmin bool, pathUserID, postID string) error

	GetFollowedUsersPosts(ctx context.Context, userID string, skip, limit int64) (*dto.FollowingFeedDTO, error)
	GetTrendingPosts(ctx context.Context, skip, limit int64) (*dto.TrendingFeedDTO, error)
	RefreshTrendingCache(ctx context.Context) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*model.Post, error) {
	existing, err := s.postRepo.GetPostByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTitleTaken
	}

	post := &model.Post{}
	if err := copier.Copy(post, req); err != nil {
		return nil, err
	}

	post.UserID = userID
	post.Slug = slug.Make(req.Title)
	if post.Category == "" {
		post.Category = model.DefaultCategory
	}
	if post.Image == "" {
		post.Image = model.DefaultPostImage
	}
	post.Likes = []string{}
	post.Bookmarks = []string{}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	return s.postRepo.CreatePost(ctx, post)
}

func (s *postServiceImpl) GetPosts(ctx context.Context, p query.ListParams) (*dto.PostListDTO, error) {
	q := query.Compose(p, query.ProfilePaged)

	posts, total, lastMonth, err := s.runListQuery(ctx, q)
	if err != nil {
		return nil, err
	}

	return &dto.PostListDTO{
		Posts:          posts,
		TotalPosts:     total,
		LastMonthPosts: lastMonth,
		PageNo:         q.PageNo,
		ItemRange:      q.ItemRange,
		NbHits:         len(posts),
	}, nil
}

func (s *postServiceImpl) GetAllPosts(ctx context.Context, p query.ListParams) (*dto.PostListAllDTO, error) {
	q := query.Compose(p, query.ProfileOffset)

	posts, total, lastMonth, err := s.runListQuery(ctx, q)
	if err != nil {
		return nil, err
	}

	return &dto.PostListAllDTO{
		Posts:          posts,
		TotalPosts:     total,
		LastMonthPosts: lastMonth,
		PageNo:         q.PageNo,
		NbHits:         len(posts),
	}, nil
}

// runListQuery 列表查询与两项统计：全量计数、上月以来的新增计数
func (s *postServiceImpl) runListQuery(ctx context.Context, q query.PostQuery) ([]*model.Post, int64, int64, error) {
	posts, err := s.postRepo.FindPosts(ctx, q)
	if err != nil {
		return nil, 0, 0, err
	}

	total, err := s.postRepo.CountPosts(ctx, nil)
	if err != nil {
		return nil, 0, 0, err
	}

	lastMonth, err := s.postRepo.CountPosts(ctx, bson.M{
		"createdAt": bson.M{"$gte": query.MonthAgo(time.Now())},
	})
	if err != nil {
		return nil, 0, 0, err
	}

	return posts, total, lastMonth, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, actorID, pathUserID, postID string, req *dto.UpdatePostDTO) (*model.Post, error) {
	if actorID != pathUserID {
		return nil, ErrPostUpdateDenied
	}

	post, err := s.postRepo.UpdatePost(ctx, postID, bson.M{
		"title":     req.Title,
		"slug":      slug.Make(req.Title),
		"content":   req.Content,
		"category":  req.Category,
		"image":     req.Image,
		"updatedAt": time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, actorID string, actorAdmin bool, pathUserID, postID string) error {
	if !actorAdmin && actorID != pathUserID {
		return ErrPostDeleteDenied
	}
	return s.postRepo.DeletePost(ctx, postID)
}

func (s *postServiceImpl) GetFollowedUsersPosts(ctx context.Context, userID string, skip, limit int64) (*dto.FollowingFeedDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if len(user.Following) == 0 {
		return &dto.FollowingFeedDTO{Posts: []*model.Post{}, TotalPosts: 0}, nil
	}

	filter := bson.M{"userId": bson.M{"$in": user.Following}}
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

	return &dto.FollowingFeedDTO{Posts: posts, TotalPosts: total}, nil
}

func (s *postServiceImpl) GetTrendingPosts(ctx context.Context, skip, limit int64) (*dto.TrendingFeedDTO, error) {
	// 默认窗口走缓存，其余窗口直查
	if skip == 0 && limit == query.DefaultLimit {
		if cached, err := redis.GetValue(ctx, consts.TrendingCacheKey); err == nil && cached != "" {
			var feed dto.TrendingFeedDTO
			if err := json.Unmarshal([]byte(cached), &feed); err == nil {
				return &feed, nil
			}
		}
	}

	feed, err := s.loadTrending(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	if skip == 0 && limit == query.DefaultLimit {
		s.storeTrendingCache(ctx, feed)
	}
	return feed, nil
}

// RefreshTrendingCache 由定时任务调用，预热默认窗口
func (s *postServiceImpl) RefreshTrendingCache(ctx context.Context) error {
	feed, err := s.loadTrending(ctx, 0, query.DefaultLimit)
	if err != nil {
		return err
	}
	s.storeTrendingCache(ctx, feed)
	return nil
}

func (s *postServiceImpl) loadTrending(ctx context.Context, skip, limit int64) (*dto.TrendingFeedDTO, error) {
	since := query.TrendingSince(time.Now())

	docs, err := s.postRepo.FindTrending(ctx, since, skip, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountPosts(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}

	return &dto.TrendingFeedDTO{Posts: docs, TotalPosts: total}, nil
}

func (s *postServiceImpl) storeTrendingCache(ctx context.Context, feed *dto.TrendingFeedDTO) {
	payload, err := json.Marshal(feed)
	if err != nil {
		return
	}
	if err := redis.SetWithExpiration(ctx, consts.TrendingCacheKey, string(payload), trendingCacheTTL); err != nil {
		log.WarnContext(ctx, "Failed to cache trending feed", "err", err)
	}
}
