package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/gristry/internal/service"
)

type TagHandler struct {
	catalog *service.CatalogService
}

func NewTagHandler(catalog *service.CatalogService) *TagHandler {
	return &TagHandler{catalog: catalog}
}

func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.catalog.ListTags(c.Request.Context(), service.TagQuery{
		IDs: optionalQuery(c, "id"),
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
