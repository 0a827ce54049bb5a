package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/service"
	"github.com/cloud-wave-best-zizon/stockify-web/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
	logger           *zap.Logger
}

func NewInventoryHandler(inventoryService *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	list, err := h.inventoryService.ListProducts(c.Request.Context())
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error loading products from the server")
		c.JSON(status, gin.H{
			"notice": notice,
			"rows":   []domain.ProductRow{},
		})
		return
	}

	response := gin.H{
		"rows":     list.Rows,
		"fallback": list.Fallback,
	}
	if list.Fallback {
		response["notice"] = warning("Product service unavailable, showing example products")
	}
	c.JSON(http.StatusOK, response)
}

func (h *InventoryHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.inventoryService.Detail(c.Request.Context(), id)
	if err != nil {
		status, notice := failure(h.logger, err,
			"Product not found",
			"Error loading the product detail",
			zap.Int64("product_id", id))
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": detail})
}

func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	list, err := h.inventoryService.Delete(c.Request.Context(), id)
	if err != nil {
		status, notice := failure(h.logger, err,
			"Product not found",
			"Error deleting the product",
			zap.Int64("product_id", id))
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notice":   success("Product deleted successfully"),
		"rows":     list.Rows,
		"fallback": list.Fallback,
	})
}

func (h *InventoryHandler) Categories(c *gin.Context) {
	options, err := h.inventoryService.Categories(c.Request.Context())
	if err != nil {
		status, notice := failure(h.logger, err, "", "Failed to load categories")
		c.JSON(status, gin.H{
			"notice":  notice,
			"options": options,
		})
		return
	}

	response := gin.H{"options": options}
	if len(options) == 1 {
		response["notice"] = warning("No categories found")
	}
	c.JSON(http.StatusOK, response)
}

func (h *InventoryHandler) Form(c *gin.Context) {
	form, err := h.inventoryService.Form(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error loading the form")
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

func (h *InventoryHandler) OpenAdd(c *gin.Context) {
	view, err := h.inventoryService.OpenForAdd(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error opening the form")
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, formResponse(view))
}

func (h *InventoryHandler) OpenEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.inventoryService.OpenForEdit(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		status, notice := failure(h.logger, err,
			"Product not found",
			"Error loading the product for editing",
			zap.Int64("product_id", id))
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, formResponse(view))
}

func (h *InventoryHandler) Save(c *gin.Context) {
	var req domain.ProductFields

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"notice": warning("Invalid request format"),
		})
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	saved, err := h.inventoryService.Save(ctx, sessionID, req)
	if err != nil {
		generic := "Error adding the product"
		response := gin.H{}
		if form, formErr := h.inventoryService.Form(ctx, sessionID); formErr == nil {
			if form.Mode == domain.ModeEdit {
				generic = "Error updating the product"
			}
			response["form"] = form
		}
		status, notice := failure(h.logger, err, "Product not found", generic)
		response["notice"] = notice
		c.JSON(status, response)
		return
	}

	message := "Product added successfully"
	if saved.Mode == domain.ModeEdit {
		message = "Product updated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"notice":   success(message),
		"rows":     saved.List.Rows,
		"fallback": saved.List.Fallback,
	})
}

func (h *InventoryHandler) Cancel(c *gin.Context) {
	form, err := h.inventoryService.Cancel(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error closing the form")
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

func formResponse(view *service.FormView) gin.H {
	response := gin.H{"form": view.Form}
	if view.Notice != "" {
		response["notice"] = warning(view.Notice)
	}
	return response
}
