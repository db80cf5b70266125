package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/gristry/internal/middleware"
)

type RouterDeps struct {
	Items *ItemHandler
	Tags  *TagHandler
	Docs  *DocsHandler

	CORSOrigins     []string
	RateLimitWindow time.Duration
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	if deps.RateLimitWindow > 0 {
		router.Use(middleware.RateLimit(deps.RateLimitWindow))
	}

	router.GET("/", deps.Docs.Redirect)
	router.GET("/docs", deps.Docs.Page)
	router.GET("/openapi.json", deps.Docs.OpenAPI)

	router.GET("/items", deps.Items.List)
	router.GET("/tags", deps.Tags.List)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
