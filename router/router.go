package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slicely/pizza-order-backend/controllers"
	"github.com/slicely/pizza-order-backend/middlewares"
	"github.com/slicely/pizza-order-backend/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	pizzaCtrl := controllers.NewPizzaController(db)
	orderCtrl := controllers.NewOrderController(db, services.NewPaymentService(db))

	// Health check (used by the hosting platform)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Pizza Ordering API is running",
			"status":  "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/pizzas", pizzaCtrl.GetAllPizzas)
		api.POST("/cart", orderCtrl.UpsertCart)
		api.POST("/checkout", orderCtrl.Checkout)
		api.POST("/payment", orderCtrl.Pay)
	}

	return r
}
