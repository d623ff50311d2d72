// Package middleware holds the gin middleware shared by all routes.
package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request identifier back to the client.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns a uuid to every request and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logging logs one line per completed request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		id, _ := c.Get("request_id")
		log.Printf("%s %s -> %d (%s) [%v]",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			id,
			time.Since(start).Round(time.Microsecond),
		)
	}
}

// CORS allows the configured browser origins to reach the API.
func CORS(origins string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(origins, ",")
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Range"}
	config.ExposeHeaders = []string{"Content-Range", "Accept-Ranges", RequestIDHeader}
	return cors.New(config)
}
