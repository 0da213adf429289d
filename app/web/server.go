package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, staticDir string) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(requestIDMiddleware())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\" %v\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
				param.Keys[requestIDKey],
			)
		},
		SkipPaths: []string{"/health"},
	}))
	r.Use(gin.Recovery())

	r.SetHTMLTemplate(newTemplates())

	setupRoutes(r, handler, staticDir)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, staticDir string) {
	r.GET("/", handler.Home)
	r.GET("/blog", handler.BlogIndex)
	r.GET("/blog/:slug", handler.BlogPost)
	r.GET("/start-building", handler.StartBuilding)
	r.GET("/rss.xml", handler.RSS)
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	api.Use(corsMiddleware())
	{
		api.GET("/posts", handler.APIListPosts)
		api.GET("/posts/:slug", handler.APIGetPost)
		api.OPTIONS("/posts", noContent)
		api.OPTIONS("/posts/:slug", noContent)
	}

	if staticDir != "" {
		r.Static("/assets", staticDir)
	}

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", noContent)

	r.NoRoute(handler.NotFound)
}

// requestIDMiddleware keeps an incoming X-Request-ID or assigns a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)

		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
