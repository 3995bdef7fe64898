package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"github.com/amansaroj0309/mern-blog-app/internal/api/dto"
	"github.com/amansaroj0309/mern-blog-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	Created             = 201
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusOK, dto.Response{
		StatusCode: Ok,
		Data:       data,
		Message:    message,
	})
}

// CreatedOk 资源创建成功返回封装
func CreatedOk(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusCreated, dto.Response{
		StatusCode: Created,
		Data:       data,
		Message:    message,
	})
}

// Fail 失败返回封装，HTTP 状态与业务状态保持一致
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
	})
}

// Error 处理错误：参数/JSON 错误归为 400，业务错误查 ErrorMap，
// 未登记的错误记日志并以通用 500 返回，不泄露内部细节。
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "Invalid request parameters")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Malformed JSON body")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "Unhandled error", "err", err)
		Fail(c, InternalServerError, "Internal server error")
		return
	}
	Fail(c, code, err.Error())
}
