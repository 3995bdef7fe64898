package repository

import (
	"context"
	"time"

	"github.com/amansaroj0309/mern-blog-app/internal/model"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	GetPostByTitle(ctx context.Context, title string) (*model.Post, error)
	FindPosts(ctx context.Context, q query.PostQuery) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter bson.M) (int64, error)
	UpdatePost(ctx context.Context, id string, set bson.M) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error

	// AddMembership/RemoveMembership 单文档原子更新：
	// $push/$pull 成员数组并同步 $inc 计数字段。
	AddMembership(ctx context.Context, postID, field, counterField, userID string) error
	RemoveMembership(ctx context.Context, postID, field, counterField, userID string) error

	FindTrending(ctx context.Context, since time.Time, skip, limit int64) ([]bson.M, error)
}

type PostRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepo {
	return &PostRepoImpl{
		col: db.Collection("posts"),
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "insert post")
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return post, nil
}

func (s *PostRepoImpl) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var post model.Post
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err != nil {
		if pkgerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "find post by id")
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostByTitle(ctx context.Context, title string) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"title": title}).Decode(&post)
	if err != nil {
		if pkgerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "find post by title")
	}
	return &post, nil
}

// FindPosts 执行查询组合器编译出的查询
func (s *PostRepoImpl) FindPosts(ctx context.Context, q query.PostQuery) ([]*model.Post, error) {
	findOptions := options.Find().SetSkip(q.Skip)
	if q.Limit >= 0 {
		findOptions.SetLimit(q.Limit)
	}
	if q.Sort != nil {
		findOptions.SetSort(q.Sort)
	}
	if q.Projection != nil {
		findOptions.SetProjection(q.Projection)
	}

	cursor, err := s.col.Find(ctx, q.Filter, findOptions)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find posts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, pkgerrors.Wrap(err, "decode posts")
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "count posts")
	}
	return count, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, id string, set bson.M) (*model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	after := options.After
	var post model.Post
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&post)
	if err != nil {
		if pkgerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "update post")
	}
	return &post, nil
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid})
	return pkgerrors.Wrap(err, "delete post")
}

func (s *PostRepoImpl) AddMembership(ctx context.Context, postID, field, counterField, userID string) error {
	return s.updateMembership(ctx, postID, bson.M{
		"$push": bson.M{field: userID},
		"$inc":  bson.M{counterField: 1},
	})
}

func (s *PostRepoImpl) RemoveMembership(ctx context.Context, postID, field, counterField, userID string) error {
	return s.updateMembership(ctx, postID, bson.M{
		"$pull": bson.M{field: userID},
		"$inc":  bson.M{counterField: -1},
	})
}

func (s *PostRepoImpl) updateMembership(ctx context.Context, postID string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil
	}
	_, err = s.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return pkgerrors.Wrap(err, "update membership")
}

// FindTrending 返回带 engagementScore 字段的原始文档
func (s *PostRepoImpl) FindTrending(ctx context.Context, since time.Time, skip, limit int64) ([]bson.M, error) {
	cursor, err := s.col.Aggregate(ctx, query.TrendingPipeline(since, skip, limit))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "aggregate trending")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, pkgerrors.Wrap(err, "decode trending")
	}
	return docs, nil
}
