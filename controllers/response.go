package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns. Code 0 signals success;
// failures carry the HTTP status as code.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// OK writes a success envelope with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: "success", Data: data})
}

// Fail writes a failure envelope; the HTTP status doubles as the code.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Code: status, Msg: msg, Data: nil})
}

// Localized messages for the generic failure classes.
const (
	MsgUnauthorized  = "认证失败，请检查token格式是否正确或重新登录"
	MsgForbidden     = "权限不足，无法访问该资源"
	MsgInternalError = "内部服务器错误"
)
