package domain

import (
	"strings"
	"time"
)

// Business represents a business record owned by the user who created it.
// BusinessCode is a human-readable sequential identifier ("BE-001", ...) assigned
// once at creation and never changed.
type Business struct {
	BusinessID    string       `json:"businessID"` // Primary Key (e.g., UUID)
	BusinessCode  string       `json:"businessCode"`
	Name          string       `json:"name"`
	Type          BusinessType `json:"type"`
	Address       Address      `json:"address"`
	PhoneNumber   string       `json:"phoneNumber"`
	OwnerUserID   string       `json:"ownerUserID"`
	OwnerUserName string       `json:"ownerUserName"` // Snapshot of the owner's name at creation
	Email         string       `json:"email"`         // Snapshot of the owner's email at creation
	CreatedOn     time.Time    `json:"createdOn"`
	InvoiceIDs    []string     `json:"invoiceIDs"` // Append-only list of invoices raised against this business
}

// Address holds the nested address document of a business.
type Address struct {
	Country    string `json:"country"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Building   string `json:"building"`
	Street     string `json:"street"`
}

// BusinessType defines the legal form of a business.
type BusinessType string

const (
	BusinessTypeUnknown    BusinessType = "Unknown"
	BusinessTypeLimited    BusinessType = "Limited"
	BusinessTypeLLP        BusinessType = "LLP"
	BusinessTypeIndividual BusinessType = "Individual"
)

// ParseBusinessType maps a raw type string to a BusinessType, degrading to
// BusinessTypeUnknown for unrecognised values.
func ParseBusinessType(raw string) BusinessType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "limited":
		return BusinessTypeLimited
	case "llp":
		return BusinessTypeLLP
	case "individual":
		return BusinessTypeIndividual
	default:
		return BusinessTypeUnknown
	}
}
