package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"customer_portal/pkg/logger"
)

// CustomerPrefix is the customer-scoped path prefix the gateway owns.
const CustomerPrefix = "/api/customer"

// NewRouter wires the gateway: a health endpoint plus the customer-scoped
// catch-all proxy.
func NewRouter(p *Proxy, log logger.ILogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.Any(CustomerPrefix+"/*"+ProxyPath, p.Handler)

	return r
}

func accessLog(log logger.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info("request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()))
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Request-Id") == "" {
			c.Request.Header.Set("X-Request-Id", uuid.NewString())
		}
		c.Writer.Header().Set("X-Request-Id", c.GetHeader("X-Request-Id"))
		c.Next()
	}
}
