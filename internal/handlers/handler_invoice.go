package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizdesk/business_management_app/internal/apperrors"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
	"github.com/bizdesk/business_management_app/internal/dto"
	"github.com/bizdesk/business_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice related requests.
type InvoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(is portssvc.InvoiceSvcFacade) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes sets up the routes for invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := NewInvoiceHandler(invoiceService)

	invoice := rg.Group("/invoice")
	{
		invoice.POST("/add", h.CreateInvoice)
		invoice.PUT("/update/:id", h.UpdateInvoice)
		invoice.DELETE("/delete/:id", h.DeleteInvoice)
		invoice.GET("/all", h.ListInvoices)
		invoice.GET("/paginated", h.ListInvoicesPaginated)
		invoice.GET("/by-business/:businessId", h.ListInvoicesByBusiness)
		invoice.GET("/history/:businessId", h.GetInvoiceHistory)
	}
}

// CreateInvoice godoc
// @Summary Create invoice
// @Description Creates an invoice, links it to its business, and records a history entry.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.SaveInvoiceRequest true "Invoice Info"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice/add [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userName := middleware.GetUserNameFromContext(c)

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, userID, userName)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// UpdateInvoice godoc
// @Summary Update invoice
// @Description Replaces the mutable fields of an invoice and records the changes in history.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.SaveInvoiceRequest true "Invoice Info"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice/update/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userName := middleware.GetUserNameFromContext(c)

	var req dto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), req, userID, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// DeleteInvoice godoc
// @Summary Delete invoice
// @Description Soft-deletes an invoice. The record is retained with status Deleted and the deletion is recorded in history.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice/delete/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userName := middleware.GetUserNameFromContext(c)

	err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id"), userID, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Invoice deleted successfully"})
}

// ListInvoices godoc
// @Summary List invoices
// @Description Lists active invoices, optionally filtered by service name and a start/due date window.
// @Tags invoices
// @Produce json
// @Param service query string false "Exact service line name"
// @Param startDate query string false "Start date lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Due date upper bound (YYYY-MM-DD)"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice/all [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var params dto.FilterInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// ListInvoicesPaginated godoc
// @Summary List invoices paginated
// @Description Lists a page of active invoices matching the filters plus the total count of the filtered set.
// @Tags invoices
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param pageSize query int false "Page size" default(15)
// @Param search query string false "Matches service names, invoice code, and business name"
// @Param startDate query string false "Start date lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Due date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.PaginatedInvoicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice/paginated [get]
func (h *InvoiceHandler) ListInvoicesPaginated(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.invoiceService.ListInvoicesPaginated(c.Request.Context(), params)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list invoices paginated", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListInvoicesByBusiness godoc
// @Summary List invoices of a business
// @Description Lists all invoices of a business regardless of status, with the business embedded as an {id, name} reference.
// @Tags invoices
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {array} dto.BusinessInvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice/by-business/{businessId} [get]
func (h *InvoiceHandler) ListInvoicesByBusiness(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoicesByBusiness(c.Request.Context(), c.Param("businessId"))
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list invoices by business", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceHistory godoc
// @Summary Invoice history of a business
// @Description Lists invoice-type history entries correlated to the business through its business code, newest first. Unknown businesses yield an empty list.
// @Tags invoices
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {array} dto.HistoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoice/history/{businessId} [get]
func (h *InvoiceHandler) GetInvoiceHistory(c *gin.Context) {
	entries, err := h.invoiceService.GetInvoiceHistory(c.Request.Context(), c.Param("businessId"))
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get invoice history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get invoice history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponses(entries))
}
