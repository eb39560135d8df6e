package middleware

import (
	"strings"
	"time"

	"content_proxy_v1/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Instrument 记录内容生成请求的次数和耗时
// content_type 取路由模板去掉前导斜杠，如 youtube/generate-script；未匹配路由不记录
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" || c.Request.Method != "POST" {
			return
		}
		m.ObserveContent(strings.TrimPrefix(route, "/"), c.Writer.Status(), time.Since(start))
	}
}
