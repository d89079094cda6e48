package router

import (
	"github.com/cl7paBka/goar-tomsk-web/internal/service"
	"github.com/cl7paBka/goar-tomsk-web/internal/transport/http/handlers"
	"github.com/cl7paBka/goar-tomsk-web/internal/transport/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func Router(users *service.UserService, catalog *service.CatalogService, orders *service.OrderService, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-User-ID", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Identity())

	userHandler := handlers.NewUserHandler(users, log)
	categoryHandler := handlers.NewCategoryHandler(catalog, log)
	productHandler := handlers.NewProductHandler(catalog, log)
	toppingHandler := handlers.NewToppingHandler(catalog, log)
	orderHandler := handlers.NewOrderHandler(orders, log)

	usersGroup := r.Group("/users")
	{
		usersGroup.POST("/register", userHandler.Register)
		usersGroup.POST("/login", userHandler.Login)
		usersGroup.GET("/me", userHandler.Me)
		usersGroup.PATCH("/me", userHandler.UpdateMe)
		usersGroup.DELETE("/me", userHandler.DeleteMe)
		usersGroup.GET("/me/addresses", userHandler.ListAddresses)
		usersGroup.POST("/me/addresses", userHandler.AddAddress)
		usersGroup.DELETE("/me/addresses/:id", userHandler.DeleteAddress)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.Get)
		categories.POST("", categoryHandler.Create)
		categories.PATCH("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	products := r.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.POST("", productHandler.Create)
		products.PATCH("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
		products.POST("/:id/toppings/:topping_id", productHandler.AttachTopping)
		products.DELETE("/:id/toppings/:topping_id", productHandler.DetachTopping)
	}

	toppings := r.Group("/toppings")
	{
		toppings.GET("", toppingHandler.List)
		toppings.GET("/:id", toppingHandler.Get)
		toppings.POST("", toppingHandler.Create)
		toppings.PATCH("/:id", toppingHandler.Update)
		toppings.DELETE("/:id", toppingHandler.Delete)
	}

	ordersGroup := r.Group("/orders")
	{
		ordersGroup.GET("", orderHandler.List)
		ordersGroup.GET("/:id", orderHandler.Get)
		ordersGroup.POST("", orderHandler.Create)
		ordersGroup.PATCH("/:id", orderHandler.UpdateStatus)
		ordersGroup.DELETE("/:id", orderHandler.Delete)
		ordersGroup.POST("/:id/payment", orderHandler.RecordPayment)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
