package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"content_proxy_v1/internal/api/dto"
	"content_proxy_v1/internal/service"

	"github.com/gin-gonic/gin"
)

// ==================== 固定提示语 ====================

const (
	msgTopicRequired     = "Topic is required."
	msgInterestsRequired = "Interests are required."
)

// ==================== 请求辅助 ====================

// bindRequest 解析 JSON 请求体
// 空 body 视为空对象，交给必填校验返回固定提示；格式错误直接 400
func bindRequest(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Detail: "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// requireField 必填字段为空时返回 400，不调用上游
func requireField(c *gin.Context, value, message string) bool {
	if strings.TrimSpace(value) == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Detail: message})
		return false
	}
	return true
}

// ==================== 错误映射 ====================

// respondError 将 service 层错误映射为 HTTP 响应
//   - UpstreamError: 透传上游状态码和响应体
//   - ErrMalformedResponse: 500 固定诊断信息
//   - 其他: 500 包装原始错误
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var upErr *service.UpstreamError
	switch {
	case errors.As(err, &upErr):
		status := upErr.StatusCode
		if status < 400 || status > 599 {
			// 非 2xx 但也不是错误码 (如 3xx)，按网关错误处理
			status = http.StatusBadGateway
		}
		c.JSON(status, dto.ErrorResp{Detail: upErr.Error()})
	case errors.Is(err, service.ErrMalformedResponse):
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Detail: service.ErrMalformedResponse.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Detail: fmt.Sprintf("An unexpected error occurred: %v", err)})
	}
}
