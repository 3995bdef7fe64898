package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("Invalid request parameters")
	ErrUserNotFound       = errors.New("User not found")
	ErrPostNotFound       = errors.New("Post not found")
	ErrTitleTaken         = errors.New("Create unique post or title")
	ErrUsernameExist      = errors.New("userName already exists")
	ErrEmailExist         = errors.New("email already exists")
	ErrUsernameLength     = errors.New("userName must be at between 7 and 20 characters")
	ErrUsernameSpaces     = errors.New("userName cannot contain spaces")
	ErrUsernameCharset    = errors.New("userName can only contains letter or number")
	ErrEmailInvalid       = errors.New("Not a valid email")
	ErrEmailTooShort      = errors.New("email must be at least 7 characters")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAlreadyLiked       = errors.New("You have already liked this post")
	ErrNotLiked           = errors.New("You have not liked this post")
	ErrAlreadyBookmarked  = errors.New("You have already bookmarked this post")
	ErrNotBookmarked      = errors.New("You have not bookmarked this post")
	ErrFollowSelf         = errors.New("You cannot follow yourself")
	ErrUnfollowSelf       = errors.New("You cannot unfollow yourself")
	ErrAlreadyFollowing   = errors.New("You are already following this user")
	ErrNotFollowing       = errors.New("You are not following this user")
	ErrUpdateForbidden    = errors.New("You are not allowed to update this user")
	ErrDeleteForbidden    = errors.New("You are not allowed to delete this user")
	ErrLogoutForbidden    = errors.New("You are not allowed to logout this user")
	ErrPostUpdateDenied   = errors.New("You are not allowed to update this post")
	ErrPostDeleteDenied   = errors.New("You are not allowed to delete this post")
	ErrUserDeleteFailed   = errors.New("Error while deleting user")
)

// ErrorMap 业务错误到 HTTP 状态码的唯一映射，
// 未登记的错误在响应层统一按 500 处理。
var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrPostNotFound:       NotFound,
	ErrTitleTaken:         Forbidden,
	ErrUsernameExist:      BadRequest,
	ErrEmailExist:         BadRequest,
	ErrUsernameLength:     BadRequest,
	ErrUsernameSpaces:     BadRequest,
	ErrUsernameCharset:    BadRequest,
	ErrEmailInvalid:       BadRequest,
	ErrEmailTooShort:      BadRequest,
	ErrPasswordTooShort:   BadRequest,
	ErrInvalidCredentials: Unauthorized,
	ErrAlreadyLiked:       BadRequest,
	ErrNotLiked:           BadRequest,
	ErrAlreadyBookmarked:  BadRequest,
	ErrNotBookmarked:      BadRequest,
	ErrFollowSelf:         BadRequest,
	ErrUnfollowSelf:       BadRequest,
	ErrAlreadyFollowing:   BadRequest,
	ErrNotFollowing:       BadRequest,
	ErrUpdateForbidden:    Forbidden,
	ErrDeleteForbidden:    Forbidden,
	ErrLogoutForbidden:    Forbidden,
	ErrPostUpdateDenied:   Forbidden,
	ErrPostDeleteDenied:   Forbidden,
	ErrUserDeleteFailed:   Forbidden,
}
