package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/stockify-web/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(inventory *InventoryHandler, suppliers *SupplierHandler, logger *zap.Logger, secureCookie bool) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())

	v1 := router.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	screens := v1.Group("")
	screens.Use(middleware.Session(secureCookie))
	{
		screens.GET("/inventory/products", inventory.ListProducts)
		screens.GET("/inventory/products/:id", inventory.GetProduct)
		screens.DELETE("/inventory/products/:id", inventory.DeleteProduct)
		screens.GET("/inventory/categories", inventory.Categories)
		screens.GET("/inventory/form", inventory.Form)
		screens.POST("/inventory/form/add", inventory.OpenAdd)
		screens.POST("/inventory/form/edit/:id", inventory.OpenEdit)
		screens.POST("/inventory/form/save", inventory.Save)
		screens.POST("/inventory/form/cancel", inventory.Cancel)

		screens.GET("/suppliers", suppliers.ListSuppliers)
		screens.DELETE("/suppliers/:id", suppliers.DeleteSupplier)
		screens.GET("/suppliers/form", suppliers.Form)
		screens.POST("/suppliers/form/add", suppliers.OpenAdd)
		screens.POST("/suppliers/form/edit/:id", suppliers.OpenEdit)
		screens.POST("/suppliers/form/save", suppliers.Save)
		screens.POST("/suppliers/form/cancel", suppliers.Cancel)
	}

	return router
}
