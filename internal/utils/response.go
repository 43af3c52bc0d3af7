package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 統一的錯誤代碼
const (
	CodeBadRequest       = "bad_request"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeValidationFailed = "validation_failed"
	CodeRateLimited      = "rate_limited"
	CodeInternal         = "internal_error"
)

// Response 定義 API 的統一回應格式
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK 回傳成功回應
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created 回傳建立成功的回應
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Fail 回傳錯誤回應
func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{Success: false, Error: &ErrorBody{Code: code, Message: message}})
}

// FailAbort 回傳錯誤回應並中止後續 middleware
func FailAbort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Response{Success: false, Error: &ErrorBody{Code: code, Message: message}})
}
