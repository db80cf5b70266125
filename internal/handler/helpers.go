package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gristry/internal/middleware"
	appErr "github.com/xxxsen/gristry/internal/pkg/errors"
	"github.com/xxxsen/gristry/internal/pkg/response"
)

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := c.GetString(middleware.ContextRequestIDKey)
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case appErr.IsUpstream(err):
		response.Error(c, http.StatusBadGateway, "upstream", "table store unavailable")
	default:
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

// optionalQuery distinguishes an absent parameter (nil) from a present one,
// including the present-but-empty case.
func optionalQuery(c *gin.Context, key string) *string {
	if value, ok := c.GetQuery(key); ok {
		return &value
	}
	return nil
}
