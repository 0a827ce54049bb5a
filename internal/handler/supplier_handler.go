package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/service"
	"github.com/cloud-wave-best-zizon/stockify-web/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	supplierService *service.SupplierService
	logger          *zap.Logger
}

func NewSupplierHandler(supplierService *service.SupplierService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
		logger:          logger,
	}
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	list, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error loading suppliers from the server")
		c.JSON(status, gin.H{
			"notice": notice,
			"rows":   []domain.CompanyRow{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":     list.Rows,
		"fallback": list.Fallback,
	})
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	list, err := h.supplierService.Delete(c.Request.Context(), id)
	if err != nil {
		status, notice := failure(h.logger, err,
			"Supplier not found",
			"Error deleting the supplier",
			zap.Int64("company_id", id))
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notice":   success("Supplier deleted successfully"),
		"rows":     list.Rows,
		"fallback": list.Fallback,
	})
}

func (h *SupplierHandler) Form(c *gin.Context) {
	form, err := h.supplierService.Form(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error loading the form")
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

func (h *SupplierHandler) OpenAdd(c *gin.Context) {
	view, err := h.supplierService.OpenForAdd(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error opening the form")
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, formResponse(view))
}

func (h *SupplierHandler) OpenEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.supplierService.OpenForEdit(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		status, notice := failure(h.logger, err,
			"Supplier not found",
			"Error loading the supplier for editing",
			zap.Int64("company_id", id))
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, formResponse(view))
}

func (h *SupplierHandler) Save(c *gin.Context) {
	var req domain.CompanyFields

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"notice": warning("Invalid request format"),
		})
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	saved, err := h.supplierService.Save(ctx, sessionID, req)
	if err != nil {
		generic := "Error adding the supplier"
		response := gin.H{}
		if form, formErr := h.supplierService.Form(ctx, sessionID); formErr == nil {
			if form.Mode == domain.ModeEdit {
				generic = "Error updating the supplier"
			}
			response["form"] = form
		}
		status, notice := failure(h.logger, err, "Supplier not found", generic)
		response["notice"] = notice
		c.JSON(status, response)
		return
	}

	message := "Supplier added successfully"
	if saved.Mode == domain.ModeEdit {
		message = "Supplier updated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"notice":   success(message),
		"rows":     saved.List.Rows,
		"fallback": saved.List.Fallback,
	})
}

func (h *SupplierHandler) Cancel(c *gin.Context) {
	form, err := h.supplierService.Cancel(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		status, notice := failure(h.logger, err, "", "Error closing the form")
		c.JSON(status, gin.H{"notice": notice})
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}
