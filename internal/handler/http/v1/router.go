package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Health-check остается
// открытым; остальные маршруты защищаются переданными middleware.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authMiddleware ...gin.HandlerFunc) {
	// Маршруты жизненного цикла алертов
	alerts := api.Group("/alerts", authMiddleware...)
	{
		alerts.POST("", h.triggerAlert)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/acknowledge", h.acknowledgeAlert)
		alerts.POST("/:id/resolve", h.resolveAlert)
	}

	// Вебхуки транспортной телеметрии
	transport := api.Group("/transport", authMiddleware...)
	{
		transport.POST("/rfid-scan", h.ingestRFIDScan)
		transport.POST("/gps", h.ingestGPSUpdate)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
