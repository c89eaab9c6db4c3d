package dto

import (
	"time"

	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// HistoryResponse is a single audit entry as returned to clients.
type HistoryResponse struct {
	ID           string               `json:"id"`
	BusinessID   string               `json:"businessID"`
	BusinessCode string               `json:"businessCode"`
	Description  string               `json:"description"`
	Target       domain.HistoryTarget `json:"target"`
	Type         string               `json:"type"`
	CreatedBy    domain.HistoryActor  `json:"createdBy"`
	Date         time.Time            `json:"date"`
}

// ToHistoryResponse converts a domain.History to HistoryResponse.
func ToHistoryResponse(h *domain.History) HistoryResponse {
	return HistoryResponse{
		ID:           h.HistoryID,
		BusinessID:   h.BusinessID,
		BusinessCode: h.BusinessCode,
		Description:  h.Description,
		Target:       h.Target,
		Type:         string(h.Type),
		CreatedBy:    h.CreatedBy,
		Date:         h.Date,
	}
}

// ToHistoryResponses converts a slice of domain.History to []HistoryResponse.
func ToHistoryResponses(entries []domain.History) []HistoryResponse {
	responses := make([]HistoryResponse, len(entries))
	for i := range entries {
		responses[i] = ToHistoryResponse(&entries[i])
	}
	return responses
}
