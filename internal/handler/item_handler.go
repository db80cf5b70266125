package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/gristry/internal/service"
)

type ItemHandler struct {
	catalog *service.CatalogService
}

func NewItemHandler(catalog *service.CatalogService) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.catalog.ListItems(c.Request.Context(), service.ItemQuery{
		IDs:  optionalQuery(c, "id"),
		Tags: optionalQuery(c, "tag"),
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
