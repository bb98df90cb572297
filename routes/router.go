package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/projectlog/linebot/controllers"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, webhook *controllers.WebhookController, download *controllers.DownloadController) {
	router.POST("/webhook", webhook.Handle)
	router.GET("/download/:filename", download.Download)

	// 健康检查路由
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
