package services

import (
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Artist = NewArtistService(repos.ArtistRepo)
	container.Promoter = NewPromoterService(repos.PromoterRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Event = NewEventService(repos.EventRepo, repos.ArtistRepo, repos.PromoterRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.EventRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.EventRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	container.TokenService = NewTokenService(cfg, container.User)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.EventSvcFacade   = (*eventService)(nil)
	_ portssvc.PaymentSvcFacade = (*paymentService)(nil)
	_ portssvc.ExpenseSvcFacade = (*expenseService)(nil)
)
