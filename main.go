package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/laura-mejia/cutting-orders-api/config"
	"github.com/laura-mejia/cutting-orders-api/controllers"
	"github.com/laura-mejia/cutting-orders-api/validation"
)

func main() {
	log.Println("Starting Cutting Orders API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := setupRouter(db)

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires every endpoint to controllers holding the given
// database handle.
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	v := validation.New()
	customerCtl := controllers.NewCustomerController(db, v)
	orderCtl := controllers.NewOrderController(db, v)
	itemCtl := controllers.NewItemController(db, v)

	router.GET("/health", healthCheck)

	router.POST("/customers", customerCtl.Create)
	router.GET("/customers", customerCtl.List)
	router.PUT("/customers/:id", customerCtl.Update)
	router.DELETE("/customers/:id", customerCtl.Delete)

	router.POST("/order/:id", orderCtl.Create)
	router.GET("/orders", orderCtl.List)
	router.GET("/order/:id", orderCtl.Get)
	router.PUT("/order/:id/:decision", orderCtl.Transition)

	router.POST("/item/:id", itemCtl.Create)

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cutting Orders API is running",
	})
}
