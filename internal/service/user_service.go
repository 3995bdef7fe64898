package service

import (
	"context"
	"strings"
	"time"

	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/model"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/consts"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/query"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/redis"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/security"
	"github.com/amansaroj0309/mern-blog-app/internal/pkg/util"
	"github.com/amansaroj0309/mern-blog-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	usernameMinLen = 7
	usernameMaxLen = 20
	emailMinLen    = 7
	passwordMinLen = 6
)

type UserService interface {
	Register(ctx context.Context, req *dto.SignupDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, req *dto.SigninDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, tokenSignature string) error

	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetUsers(ctx context.Context, skip, limit int64, sort string) (*dto.UserListDTO, error)
	GetUserProfile(ctx context.Context, username string, page, limit int) (*dto.ProfileDTO, error)
	UpdateUser(ctx context.Context, actorID, targetID string, req *dto.UpdateUserDTO) (*model.User, error)
	DeleteUser(ctx context.Context, actorID string, actorAdmin bool, targetID string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	postRepo repository.PostRepo
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.SignupDTO) (*dto.AuthResultDTO, error) {
	if err := s.checkUsername(ctx, req.Username, nil); err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, req.Email, nil); err != nil {
		return nil, err
	}
	if len(req.Password) < passwordMinLen {
		return nil, ErrPasswordTooShort
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		Username:       strings.ToLower(req.Username),
		Email:          req.Email,
		Password:       hashed,
		ProfilePicture: model.DefaultProfilePicture,
		Followers:      []string{},
		Following:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.issueToken(created)
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.SigninDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// Logout 将 Token 签名写入 Redis 黑名单，保留到 Token 自然过期
func (s *userServiceImpl) Logout(ctx context.Context, tokenSignature string) error {
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+tokenSignature, "1", security.JWTExpirationTime)
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userServiceImpl) GetUsers(ctx context.Context, skip, limit int64, sort string) (*dto.UserListDTO, error) {
	users, err := s.userRepo.FindUsers(ctx, query.UsersSort(sort), skip, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.CountUsers(ctx, nil)
	if err != nil {
		return nil, err
	}

	lastMonth, err := s.userRepo.CountUsers(ctx, bson.M{
		"createdAt": bson.M{"$gte": query.MonthAgo(time.Now())},
	})
	if err != nil {
		return nil, err
	}

	return &dto.UserListDTO{
		Users:          users,
		TotalUsers:     total,
		LastMonthUsers: lastMonth,
	}, nil
}

func (s *userServiceImpl) GetUserProfile(ctx context.Context, username string, page, limit int) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	skip := int64((page - 1) * limit)
	filter := bson.M{"userId": user.ID.Hex()}

	posts, err := s.postRepo.FindPosts(ctx, query.PostQuery{
		Filter: filter,
		Sort:   bson.D{{Key: "createdAt", Value: -1}},
		Skip:   skip,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return &dto.ProfileDTO{
		User: dto.ProfileCardDTO{
			ID:             user.ID.Hex(),
			Username:       user.Username,
			Email:          user.Email,
			ProfilePicture: user.ProfilePicture,
			IsAdmin:        user.IsAdmin,
			CreatedAt:      user.CreatedAt,
			FollowersCount: len(user.Followers),
			FollowingCount: len(user.Following),
		},
		Posts:       posts,
		TotalPosts:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

// UpdateUser 所有字段可选，逐项校验后合并为一次 $set
func (s *userServiceImpl) UpdateUser(ctx context.Context, actorID, targetID string, req *dto.UpdateUserDTO) (*model.User, error) {
	if actorID != targetID {
		return nil, ErrUpdateForbidden
	}

	user, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	set := bson.M{"updatedAt": time.Now()}

	if req.Username != "" {
		if err := s.checkUsername(ctx, req.Username, user); err != nil {
			return nil, err
		}
		set["userName"] = strings.ToLower(req.Username)
	}

	if req.Email != "" {
		if err := s.checkEmail(ctx, req.Email, user); err != nil {
			return nil, err
		}
		set["email"] = req.Email
	}

	if req.Password != "" {
		if len(req.Password) < passwordMinLen {
			return nil, ErrPasswordTooShort
		}
		hashed, err := security.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		set["password"] = hashed
	}

	if req.ProfilePicture != "" {
		set["profilePicture"] = req.ProfilePicture
	}

	updated, err := s.userRepo.UpdateUser(ctx, targetID, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, actorID string, actorAdmin bool, targetID string) error {
	if !actorAdmin && actorID != targetID {
		return ErrDeleteForbidden
	}

	deleted, err := s.userRepo.DeleteUser(ctx, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserDeleteFailed
	}
	return nil
}

// checkUsername current 不为 nil 时允许用户保留自己的用户名
func (s *userServiceImpl) checkUsername(ctx context.Context, username string, current *model.User) error {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return ErrUsernameLength
	}
	if strings.Contains(username, " ") {
		return ErrUsernameSpaces
	}
	if !util.IsAlphanumeric(username) {
		return ErrUsernameCharset
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return err
	}
	if existing != nil && (current == nil || existing.Username != current.Username) {
		return ErrUsernameExist
	}
	return nil
}

func (s *userServiceImpl) checkEmail(ctx context.Context, email string, current *model.User) error {
	if !util.IsValidEmail(email) {
		return ErrEmailInvalid
	}
	if len(email) < emailMinLen {
		return ErrEmailTooShort
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && (current == nil || existing.Email != current.Email) {
		return ErrEmailExist
	}
	return nil
}

func (s *userServiceImpl) issueToken(user *model.User) (*dto.AuthResultDTO, error) {
	token, err := security.GenerateToken(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResultDTO{User: user, AccessToken: token}, nil
}
