package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lfp/dpalert/internal/app/pkg/ginx"
	"lfp/dpalert/internal/app/pkg/logger"
)

// Recovery 统一错误处理中间件
// 捕获 panic，记录日志后按统一格式返回 500
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v", r)
				ginx.Error(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
