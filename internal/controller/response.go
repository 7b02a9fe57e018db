package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meli_dev_v1_202610/internal/middleware"
	"meli_dev_v1_202610/pkg/errs"
)

// ==================== 统一响应 ====================

func success(c *gin.Context, message string, data interface{}) {
	body := gin.H{"code": 0, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// fail 错误统一在这里转换为 HTTP 状态码
// 5xx 的真实原因写入 gin 上下文，由请求日志输出
func fail(c *gin.Context, err error) {
	status := errs.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{
		"code":    status,
		"message": errs.PublicMessage(err),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    400,
		"message": "参数错误: " + middleware.ValidationMessage(err),
	})
}

// pathParam 必填路径参数
func pathParam(c *gin.Context, key string) (string, bool) {
	v := strings.TrimSpace(c.Param(key))
	if v == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "缺少参数 " + key})
		return "", false
	}
	return v, true
}
