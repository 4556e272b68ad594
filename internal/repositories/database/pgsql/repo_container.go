package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CommissionRepo:  newPgxCommissionRepository(dbPool),
		RevisionLogRepo: newPgxRevisionLogRepository(dbPool),
		StatusLogRepo:   newPgxStatusLogRepository(dbPool),
		DeniedJobRepo:   newPgxDeniedJobRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
