package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an invoice raised against a business.
// BusinessCode and BusinessName are snapshots taken at creation so the invoice
// stays readable even if the business is later renamed.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`   // Primary Key (e.g., UUID)
	InvoiceCode   string          `json:"invoiceCode"` // Human-readable sequential code ("INV-001", ...)
	BusinessID    string          `json:"businessID"`
	BusinessCode  string          `json:"businessCode"`
	BusinessName  string          `json:"businessName"`
	Services      []ServiceLine   `json:"services"`
	Amount        decimal.Decimal `json:"amount"` // Pre-tax sum of the service lines
	VatPercentage decimal.Decimal `json:"vatPercentage"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // Always amount + amount*vat/100
	StartDate     time.Time       `json:"startDate"`
	DueDate       time.Time       `json:"dueDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	Status        InvoiceStatus   `json:"status"`
}

// ServiceLine is a single billable line item on an invoice.
type ServiceLine struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceStatus is the lifecycle state of an invoice. Deletion is a status
// transition, not row removal; deleted invoices are retained for history.
type InvoiceStatus string

const (
	InvoiceStatusActive  InvoiceStatus = "Active"
	InvoiceStatusDeleted InvoiceStatus = "Deleted"
)

// ComputeTotal returns amount + amount*vatPercentage/100 with exact decimal
// arithmetic. TotalAmount must never be stored independently of this formula.
func ComputeTotal(amount, vatPercentage decimal.Decimal) decimal.Decimal {
	return amount.Add(amount.Mul(vatPercentage).Div(decimal.NewFromInt(100)))
}
