package repository

import (
	"context"

	"github.com/amansaroj0309/mern-blog-app/internal/model"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUsers(ctx context.Context, sort bson.D, skip, limit int64) ([]*model.User, error)
	CountUsers(ctx context.Context, filter bson.M) (int64, error)
	UpdateUser(ctx context.Context, id string, set bson.M) (*model.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	// PushRelation/PullRelation 关注关系的单文档写入，
	// 返回更新后的文档供调用方回报计数。
	PushRelation(ctx context.Context, userID, field, memberID string) (*model.User, error)
	PullRelation(ctx context.Context, userID, field, memberID string) (*model.User, error)
}

type UserRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepo {
	return &UserRepoImpl{
		col: db.Collection("users"),
	}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "insert user")
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"userName": username})
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if pkgerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "find user")
	}
	return &user, nil
}

func (s *UserRepoImpl) FindUsers(ctx context.Context, sort bson.D, skip, limit int64) ([]*model.User, error) {
	findOptions := options.Find().
		SetSort(sort).
		SetSkip(skip).
		SetLimit(limit).
		SetProjection(query.UsersProjection())

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find users")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	users := make([]*model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, pkgerrors.Wrap(err, "decode users")
	}
	return users, nil
}

func (s *UserRepoImpl) CountUsers(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "count users")
	}
	return count, nil
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, id string, set bson.M) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	after := options.After
	var user model.User
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&user)
	if err != nil {
		if pkgerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "update user")
	}
	return &user, nil
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, pkgerrors.Wrap(err, "delete user")
	}
	return res.DeletedCount > 0, nil
}

func (s *UserRepoImpl) PushRelation(ctx context.Context, userID, field, memberID string) (*model.User, error) {
	return s.updateRelation(ctx, userID, bson.M{"$push": bson.M{field: memberID}})
}

func (s *UserRepoImpl) PullRelation(ctx context.Context, userID, field, memberID string) (*model.User, error) {
	return s.updateRelation(ctx, userID, bson.M{"$pull": bson.M{field: memberID}})
}

func (s *UserRepoImpl) updateRelation(ctx context.Context, userID string, update bson.M) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	after := options.After
	var user model.User
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&user)
	if err != nil {
		if pkgerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "update relation")
	}
	return &user, nil
}
