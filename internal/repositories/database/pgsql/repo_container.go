package pgsql

import (
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EventRepo:     newPgxEventRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		ArtistRepo:    newPgxArtistRepository(dbPool),
		PromoterRepo:  newPgxPromoterRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
