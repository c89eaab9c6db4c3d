package dto

import (
	"time"

	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// AddressInput is the optional nested address on business creation.
type AddressInput struct {
	Country    string `json:"country"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Building   string `json:"building"`
	Street     string `json:"street"`
}

// CreateBusinessRequest defines the payload for creating a business.
type CreateBusinessRequest struct {
	Name        string        `json:"name" binding:"required"`
	Type        string        `json:"type"`
	PhoneNumber string        `json:"phoneNumber"`
	Address     *AddressInput `json:"address"`
}

// BusinessResponse is the full business view.
type BusinessResponse struct {
	BusinessID    string         `json:"businessID"`
	BusinessCode  string         `json:"businessCode"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Address       domain.Address `json:"address"`
	PhoneNumber   string         `json:"phoneNumber"`
	OwnerUserID   string         `json:"ownerUserID"`
	OwnerUserName string         `json:"ownerUserName"`
	Email         string         `json:"email"`
	CreatedOn     time.Time      `json:"createdOn"`
	InvoiceIDs    []string       `json:"invoiceIDs"`
}

// BusinessDetailsResponse is the detail view with the owner resolved live.
type BusinessDetailsResponse struct {
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	PhoneNumber  string         `json:"phoneNumber"`
	BusinessCode string         `json:"businessCode"`
	Address      domain.Address `json:"address"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	CreatedOn    time.Time      `json:"createdOn"`
}

// ListBusinessesParams defines query parameters for the paginated business list.
// Page is 1-indexed.
type ListBusinessesParams struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=15"`
}

// PaginatedBusinessesResponse wraps a page of businesses with the total count
// of the filtered set, for client-side page-count computation.
type PaginatedBusinessesResponse struct {
	Data  []BusinessResponse `json:"data"`
	Total int64              `json:"total"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:    b.BusinessID,
		BusinessCode:  b.BusinessCode,
		Name:          b.Name,
		Type:          string(b.Type),
		Address:       b.Address,
		PhoneNumber:   b.PhoneNumber,
		OwnerUserID:   b.OwnerUserID,
		OwnerUserName: b.OwnerUserName,
		Email:         b.Email,
		CreatedOn:     b.CreatedOn,
		InvoiceIDs:    b.InvoiceIDs,
	}
}

// ToBusinessResponses converts a slice of domain.Business to []BusinessResponse.
func ToBusinessResponses(businesses []domain.Business) []BusinessResponse {
	responses := make([]BusinessResponse, len(businesses))
	for i := range businesses {
		responses[i] = ToBusinessResponse(&businesses[i])
	}
	return responses
}
