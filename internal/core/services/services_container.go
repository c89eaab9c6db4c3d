package services

import (
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The history ledger comes first since the business and invoice write
	// paths append to it.
	container.History = NewHistoryService(repos.HistoryRepo, repos.UserRepo, repos.BusinessRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Business = NewBusinessService(repos.BusinessRepo, repos.UserRepo, container.History)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.BusinessRepo, container.History)

	return container
}
