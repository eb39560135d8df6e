package middleware

import (
	"fmt"
	"net/http"

	"content_proxy_v1/internal/api/dto"
	"content_proxy_v1/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery panic 统一转为 500 {"detail": "An unexpected error occurred: ..."}
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered", map[string]interface{}{
			"request_id": GetRequestID(c),
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResp{
			Detail: fmt.Sprintf("An unexpected error occurred: %v", recovered),
		})
	})
}
