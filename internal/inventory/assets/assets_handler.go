package assets

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	Repository InventoryRepository
	log        *zap.Logger
}

func NewInventoryHandler(r InventoryRepository, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		Repository: r,
		log:        log,
	}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/asset-inventory", h.SearchAssetsByUser)
	router.GET("/asset-inventory/:category", h.GetAssetsByCategory)
	router.GET("/asset-inventory/:category/history-log/:serialNo", h.GetHistoryLogBySerial)
}

// GetAssetsByCategory lists the grouped assets of one category. Unknown
// categories are not an error; they answer 200 with an empty array.
func (h *InventoryHandler) GetAssetsByCategory(c *gin.Context) {
	category := c.Param("category")

	rows, err := h.Repository.ListByCategory(category)
	if err != nil {
		h.log.Error("Database query error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, GroupRows(rows))
}

// GetHistoryLogBySerial returns the history log of the asset with the
// given serial number. The :category segment is accepted but not used as
// a query constraint; the route shape is kept for compatibility.
func (h *InventoryHandler) GetHistoryLogBySerial(c *gin.Context) {
	serialNo := c.Param("serialNo")

	entries, err := h.Repository.HistoryLogByAssetSerial(serialNo)
	if err != nil {
		h.log.Error("Database query error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SearchAssetsByUser answers asset summaries for a case-insensitive
// substring match on the owning user's name. The user parameter is
// required; without it the store is never queried.
func (h *InventoryHandler) SearchAssetsByUser(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "User query parameter is required"})
		return
	}

	summaries, err := h.Repository.SearchByUserName(user)
	if err != nil {
		h.log.Error("Database query error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}
