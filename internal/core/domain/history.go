package domain

import "time"

// History is a single append-only audit entry recording a create/update/delete
// on a business or invoice. Entries are never updated or deleted.
type History struct {
	HistoryID    string        `json:"historyID"`  // Primary Key (e.g., UUID)
	BusinessID   string        `json:"businessID"` // The business this entry belongs to
	BusinessCode string        `json:"businessCode"`
	Description  string        `json:"description"`
	Target       HistoryTarget `json:"target"`
	Type         HistoryType   `json:"type"`
	CreatedBy    HistoryActor  `json:"createdBy"`
	Date         time.Time     `json:"date"`
}

// HistoryTarget identifies the entity the entry is about.
type HistoryTarget struct {
	ID   string `json:"id"`
	Name string `json:"name"` // Kind of the target ("Business", "Invoice")
}

// HistoryActor is a denormalized snapshot of who performed the action. The name
// is copied at append time so history stays readable after user renames.
type HistoryActor struct {
	UserID    string    `json:"createdByUserID"`
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"createdOn"`
}

// HistoryType classifies which entity kind an entry refers to.
type HistoryType string

const (
	HistoryTypeUnknown  HistoryType = "Unknown"
	HistoryTypeBusiness HistoryType = "Business"
	HistoryTypeInvoice  HistoryType = "Invoice"
)
