package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nourshop-backend/controllers"
	"nourshop-backend/middleware"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)

		// Rute otentikasi
		api.POST("/admin/login", ctrl.Login)

		// Rute publik
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/:id", ctrl.GetProduct)
		api.POST("/orders", ctrl.CreateOrder)

		// Rute terproteksi (khusus admin)
		protected := api.Group("", middleware.RequireAdmin(ctrl.PasetoSecretKey))
		{
			protected.POST("/products", ctrl.CreateProduct)
			protected.GET("/orders", ctrl.GetOrders)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
