package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/pkg/metrics"
)

// Metrics 记录请求次数与耗时，route 使用注册的路由模板，未匹配时记为 unmatched
func Metrics(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
