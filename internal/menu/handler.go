package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// GET /menu
// --------------------------------------------------
func (h *Handler) ListDays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"days": h.catalog.Days(),
	})
}

// --------------------------------------------------
// GET /menu/:date
// --------------------------------------------------
// Unknown dates answer with an empty list, same as a day with no dishes.
func (h *Handler) ListItems(c *gin.Context) {
	date := c.Param("date")

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"items": h.catalog.ItemsFor(date),
	})
}
