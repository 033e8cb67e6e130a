package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhavik1112000/ams-backend/internal/core/container"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.InventoryHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
