package routes

import (
	"github.com/gin-gonic/gin"

	"order-gateway/controllers"
	"order-gateway/middleware"
)

func SetupRoutes(
	router *gin.Engine,
	healthCtrl *controllers.HealthController,
	userCtrl *controllers.UserController,
	orderCtrl *controllers.OrderController,
	metrics *middleware.Metrics,
) {
	router.GET("/health", healthCtrl.Health)
	router.GET("/ready", healthCtrl.Ready)
	router.GET("/metrics", gin.WrapH(metrics.Exporter()))

	router.GET("/users", userCtrl.GetUsers)
	router.POST("/users", userCtrl.CreateUser)
	router.GET("/users/:id/orders", orderCtrl.GetUserOrders)

	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:id/payment", orderCtrl.GetPaymentStatus)
}
