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

// BusinessHandler handles business directory requests.
type BusinessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(bs portssvc.BusinessSvcFacade) *BusinessHandler {
	return &BusinessHandler{businessService: bs}
}

// registerBusinessRoutes sets up the routes for businesses.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := NewBusinessHandler(businessService)

	business := rg.Group("/business")
	{
		business.POST("/add", h.CreateBusiness)
		business.GET("/user-businesses", h.ListBusinesses)
		business.GET("/search", h.SearchBusinesses)
		business.GET("/paginated", h.ListBusinessesPaginated)
		business.GET("/:id", h.GetBusiness)
		business.GET("/:id/details", h.GetBusinessDetails)
		business.GET("/:id/history", h.GetBusinessHistory)
	}
}

// CreateBusiness godoc
// @Summary Create business
// @Description Creates a business owned by the authenticated user and records a history entry.
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business Info"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business/add [post]
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Creator user not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create business", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// ListBusinesses godoc
// @Summary List businesses
// @Description Lists businesses visible to the caller. Admins see all, other roles only their own.
// @Tags businesses
// @Produce json
// @Success 200 {array} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business/user-businesses [get]
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	role := middleware.GetUserRoleFromContext(c)

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), userID, role)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list businesses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list businesses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponses(businesses))
}

// SearchBusinesses godoc
// @Summary Search businesses
// @Description Lists visible businesses whose name contains the query. An empty query lists all visible businesses.
// @Tags businesses
// @Produce json
// @Param query query string false "Name fragment to match"
// @Success 200 {array} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business/search [get]
func (h *BusinessHandler) SearchBusinesses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	role := middleware.GetUserRoleFromContext(c)

	businesses, err := h.businessService.SearchBusinesses(c.Request.Context(), c.Query("query"), userID, role)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to search businesses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search businesses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponses(businesses))
}

// ListBusinessesPaginated godoc
// @Summary List businesses paginated
// @Description Lists a page of visible businesses plus the total count of the visible set.
// @Tags businesses
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param pageSize query int false "Page size" default(15)
// @Success 200 {object} dto.PaginatedBusinessesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business/paginated [get]
func (h *BusinessHandler) ListBusinessesPaginated(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	role := middleware.GetUserRoleFromContext(c)

	var params dto.ListBusinessesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.businessService.ListBusinessesPaginated(c.Request.Context(), params, userID, role)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list businesses paginated", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list businesses"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetBusiness godoc
// @Summary Get business
// @Description Retrieves a business by ID.
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business/{id} [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	business, err := h.businessService.GetBusinessByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get business", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get business"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// GetBusinessDetails godoc
// @Summary Get business details
// @Description Retrieves the business detail view with the owner resolved live.
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessDetailsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business/{id}/details [get]
func (h *BusinessHandler) GetBusinessDetails(c *gin.Context) {
	details, err := h.businessService.GetBusinessDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get business details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get business details"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetBusinessHistory godoc
// @Summary Business history
// @Description Lists all history entries of a business, newest first.
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {array} dto.HistoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /business/{id}/history [get]
func (h *BusinessHandler) GetBusinessHistory(c *gin.Context) {
	entries, err := h.businessService.GetBusinessHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get business history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get business history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponses(entries))
}
