package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bizdesk/business_management_app/internal/apperrors"
	"github.com/bizdesk/business_management_app/internal/core/domain"
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
	"github.com/bizdesk/business_management_app/internal/dto"
	"github.com/bizdesk/business_management_app/internal/middleware"
	"github.com/google/uuid"
)

// invoiceCodePrefix is the prefix of sequential invoice codes ("INV-001").
const invoiceCodePrefix = "INV"

// unknownBusinessRef is stored for the code/name snapshot when the referenced
// business does not resolve. Invoice creation is not blocked by a dangling
// business reference.
const unknownBusinessRef = "UNKNOWN"

const dateLayout = "02-01-2006"

type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	businessRepo portsrepo.BusinessRepositoryFacade
	history      portssvc.HistorySvcFacade
}

// NewInvoiceService creates the invoice ledger service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	businessRepo portsrepo.BusinessRepositoryFacade,
	history portssvc.HistorySvcFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		history:      history,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// normalizeServiceLines converts input lines to domain lines, generating ids
// for lines that lack a valid one. Already-valid ids are preserved, so client
// supplied ids survive update round-trips.
func normalizeServiceLines(inputs []dto.ServiceLineInput) []domain.ServiceLine {
	lines := make([]domain.ServiceLine, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		lines[i] = domain.ServiceLine{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Amount:      in.Amount,
		}
	}
	return lines
}

// serviceNameList renders service lines as a comparable, human-readable
// name list for change tracking.
func serviceNameList(lines []domain.ServiceLine) string {
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}

// CreateInvoice allocates the next sequential invoice code from a live count
// (an independent counter from business codes), snapshots the referenced
// business's code and name, computes the VAT total, persists the invoice with
// status Active, links it onto its business, and appends a history entry.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest, actorUserID, actorName string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	totalCount, err := s.invoiceRepo.CountInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}
	invoiceCode := nextSequentialCode(invoiceCodePrefix, totalCount)

	businessID := ""
	if req.Business != nil {
		businessID = req.Business.ID
	}

	businessCode, businessName := unknownBusinessRef, unknownBusinessRef
	if business, err := s.businessRepo.FindBusinessByID(ctx, businessID); err == nil {
		businessCode = business.BusinessCode
		businessName = business.Name
	} else {
		logger.Warn("Business reference did not resolve for new invoice", slog.String("business_id", businessID))
	}

	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceCode:   invoiceCode,
		BusinessID:    businessID,
		BusinessCode:  businessCode,
		BusinessName:  businessName,
		Services:      normalizeServiceLines(req.Services),
		Amount:        req.Amount,
		VatPercentage: req.VatPercentage,
		TotalAmount:   domain.ComputeTotal(req.Amount, req.VatPercentage),
		StartDate:     req.StartDate,
		DueDate:       req.DueDate,
		CreatedAt:     time.Now().UTC(),
		Status:        domain.InvoiceStatusActive,
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	if invoice.BusinessID != "" {
		if err := s.businessRepo.AppendInvoiceID(ctx, invoice.BusinessID, invoice.InvoiceID); err != nil {
			return nil, fmt.Errorf("invoice %s created but linking to business failed: %w", invoice.InvoiceCode, err)
		}
	}

	description := fmt.Sprintf("Invoice %s created on %s with total amount ₹%s.<br/> Start Date: %s, Due Date: %s.",
		invoice.InvoiceCode,
		invoice.CreatedAt.Format(dateLayout),
		invoice.TotalAmount.String(),
		invoice.StartDate.Format(dateLayout),
		invoice.DueDate.Format(dateLayout),
	)

	_, err = s.history.AppendHistory(ctx, portssvc.AppendHistoryParams{
		TargetID:    invoice.InvoiceID,
		ActorUserID: actorUserID,
		ActorName:   actorName,
		Type:        domain.HistoryTypeInvoice,
		Action:      "created",
		Description: description,
		BusinessID:  invoice.BusinessID,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice %s created but recording history failed: %w", invoice.InvoiceCode, err)
	}

	logger.Info("Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_code", invoice.InvoiceCode),
	)
	return &invoice, nil
}

// UpdateInvoice loads the existing invoice by storage id, diffs each mutable
// field against the input to build a human-readable change list, fully
// replaces the mutable fields, recomputes the total, forces status back to
// Active, persists, and appends a history entry. Concurrent updates are
// last-write-wins; there is no optimistic-concurrency token.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.SaveInvoiceRequest, actorUserID, actorName string) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}

	newServices := normalizeServiceLines(req.Services)

	var changes []string
	oldNames, newNames := serviceNameList(existing.Services), serviceNameList(newServices)
	if oldNames != newNames {
		changes = append(changes, fmt.Sprintf("Service changed from %s to %s<br/>", oldNames, newNames))
	}
	if !existing.Amount.Equal(req.Amount) {
		changes = append(changes, fmt.Sprintf("Amount changed from ₹%s to ₹%s", existing.Amount.String(), req.Amount.String()))
	}
	if !existing.VatPercentage.Equal(req.VatPercentage) {
		changes = append(changes, fmt.Sprintf("VAT changed from %s%% to %s%%", existing.VatPercentage.String(), req.VatPercentage.String()))
	}
	if !existing.StartDate.Equal(req.StartDate) {
		changes = append(changes, fmt.Sprintf("StartDate changed from %s to %s", existing.StartDate.Format(dateLayout), req.StartDate.Format(dateLayout)))
	}
	if !existing.DueDate.Equal(req.DueDate) {
		changes = append(changes, fmt.Sprintf("DueDate changed from %s to %s", existing.DueDate.Format(dateLayout), req.DueDate.Format(dateLayout)))
	}

	// Full replace of the mutable fields; id, code and business linkage are
	// immutable once assigned.
	existing.Services = newServices
	existing.Amount = req.Amount
	existing.VatPercentage = req.VatPercentage
	existing.TotalAmount = domain.ComputeTotal(req.Amount, req.VatPercentage)
	existing.StartDate = req.StartDate
	existing.DueDate = req.DueDate
	existing.Status = domain.InvoiceStatusActive

	if err := s.invoiceRepo.UpdateInvoice(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}

	description := fmt.Sprintf("Invoice %s updated with no field changes.", existing.InvoiceCode)
	if len(changes) > 0 {
		description = fmt.Sprintf("Invoice %s updated: %s.", existing.InvoiceCode, strings.Join(changes, ", "))
	}

	_, err = s.history.AppendHistory(ctx, portssvc.AppendHistoryParams{
		TargetID:    existing.InvoiceID,
		ActorUserID: actorUserID,
		ActorName:   actorName,
		Type:        domain.HistoryTypeInvoice,
		Action:      "updated",
		Description: description,
		BusinessID:  existing.BusinessID,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice %s updated but recording history failed: %w", existing.InvoiceCode, err)
	}

	return existing, nil
}

// DeleteInvoice soft-deletes an invoice. The row is retained with status
// Deleted so history stays traceable. A missing invoice returns ErrNotFound
// without writing any history.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID, actorUserID, actorName string) error {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}

	if err := s.invoiceRepo.MarkInvoiceDeleted(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}

	description := fmt.Sprintf("Invoice %s deleted at %s", existing.InvoiceCode, time.Now().Format("02-01-2006 03:04 PM"))
	_, err = s.history.AppendHistory(ctx, portssvc.AppendHistoryParams{
		TargetID:    existing.InvoiceID,
		ActorUserID: actorUserID,
		ActorName:   actorName,
		Type:        domain.HistoryTypeInvoice,
		Action:      "deleted",
		Description: description,
		BusinessID:  existing.BusinessID,
	})
	if err != nil {
		return fmt.Errorf("invoice %s deleted but recording history failed: %w", existing.InvoiceCode, err)
	}

	return nil
}

// GetInvoiceByID retrieves an invoice by ID regardless of status.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

// ListInvoices lists Active invoices matching the optional filters.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.FilterInvoicesParams) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FilterInvoices(ctx, portsrepo.InvoiceFilter{
		ServiceName: params.Service,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter invoices: %w", err)
	}
	return invoices, nil
}

// ListInvoicesByBusiness lists all invoices of a business in the by-business
// projection, regardless of status.
func (s *invoiceService) ListInvoicesByBusiness(ctx context.Context, businessID string) ([]dto.BusinessInvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindInvoicesByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for business %s: %w", businessID, err)
	}

	responses := make([]dto.BusinessInvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.ToBusinessInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// ListInvoicesPaginated lists a page of Active invoices sorted ascending by
// creation time. The total count reflects the filtered set before pagination.
func (s *invoiceService) ListInvoicesPaginated(ctx context.Context, params dto.ListInvoicesParams) (*dto.PaginatedInvoicesResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 15
	}

	invoices, total, err := s.invoiceRepo.FindInvoicesPaginated(ctx, portsrepo.InvoicePageFilter{
		Search:    params.Search,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices paginated: %w", err)
	}

	return &dto.PaginatedInvoicesResponse{
		Data:  dto.ToInvoiceResponses(invoices),
		Total: total,
	}, nil
}

// GetInvoiceHistory lists Invoice ledger entries of a business, correlated
// through the denormalized business code. A business that does not resolve
// (or has no code) yields an empty result rather than an error.
func (s *invoiceService) GetInvoiceHistory(ctx context.Context, businessID string) ([]domain.History, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.History{}, nil
		}
		return nil, fmt.Errorf("failed to get business %s: %w", businessID, err)
	}
	if business.BusinessCode == "" {
		return []domain.History{}, nil
	}
	return s.history.ListInvoiceHistoryByBusinessCode(ctx, business.BusinessCode)
}
