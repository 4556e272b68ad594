package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/models"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/utils/mapping"
)

type PgxCommissionRepository struct {
	BaseRepository
}

// newPgxCommissionRepository creates a new repository for commission submissions.
func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepositoryWithTx {
	return &PgxCommissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCommissionRepository implements portsrepo.CommissionRepositoryWithTx
var _ portsrepo.CommissionRepositoryWithTx = (*PgxCommissionRepository)(nil)

const commissionColumns = `
	commission_id, job_number, job_name, job_address,
	submitter_id, submitter_name, submission_role,
	status, stage, revision_count,
	requested_amount, approved_amount, contract_amount, net_owed,
	manager_approved_at, manager_approved_by,
	accounting_approved_at, accounting_approved_by,
	admin_approved_at, admin_approved_by,
	approved_at, approved_by, denied_at, denied_by, rejection_reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCommission(row pgx.Row) (*domain.CommissionSubmission, error) {
	var m models.Commission
	err := row.Scan(
		&m.CommissionID, &m.JobNumber, &m.JobName, &m.JobAddress,
		&m.SubmitterID, &m.SubmitterName, &m.SubmissionRole,
		&m.Status, &m.Stage, &m.RevisionCount,
		&m.RequestedAmount, &m.ApprovedAmount, &m.ContractAmount, &m.NetOwed,
		&m.ManagerApprovedAt, &m.ManagerApprovedBy,
		&m.AccountingApprovedAt, &m.AccountingApprovedBy,
		&m.AdminApprovedAt, &m.AdminApprovedBy,
		&m.ApprovedAt, &m.ApprovedBy, &m.DeniedAt, &m.DeniedBy, &m.RejectionReason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCommission(m)
	return &d, nil
}

// SaveCommission inserts a newly created submission.
func (r *PgxCommissionRepository) SaveCommission(ctx context.Context, commission domain.CommissionSubmission) error {
	m := mapping.ToModelCommission(commission)
	query := `
		INSERT INTO commissions (` + commissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28, $29);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CommissionID, m.JobNumber, m.JobName, m.JobAddress,
		m.SubmitterID, m.SubmitterName, m.SubmissionRole,
		m.Status, m.Stage, m.RevisionCount,
		m.RequestedAmount, m.ApprovedAmount, m.ContractAmount, m.NetOwed,
		m.ManagerApprovedAt, m.ManagerApprovedBy,
		m.AccountingApprovedAt, m.AccountingApprovedBy,
		m.AdminApprovedAt, m.AdminApprovedBy,
		m.ApprovedAt, m.ApprovedBy, m.DeniedAt, m.DeniedBy, m.RejectionReason,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert commission "+m.CommissionID, err)
	}
	return nil
}

// FindCommissionByID retrieves a commission by its ID.
func (r *PgxCommissionRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionSubmission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE commission_id = $1;`

	comm, err := scanCommission(r.Pool.QueryRow(ctx, query, commissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find commission by ID "+commissionID, err)
	}
	return comm, nil
}

// FindCommissionByIDForUpdate retrieves a commission inside the given
// transaction with FOR UPDATE, serializing concurrent workflow operations.
func (r *PgxCommissionRepository) FindCommissionByIDForUpdate(ctx context.Context, tx pgx.Tx, commissionID string) (*domain.CommissionSubmission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE commission_id = $1 FOR UPDATE;`

	comm, err := scanCommission(tx.QueryRow(ctx, query, commissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock commission "+commissionID, err)
	}
	return comm, nil
}

// ListCommissions retrieves commissions matching the filter, newest first.
func (r *PgxCommissionRepository) ListCommissions(ctx context.Context, filter portsrepo.CommissionListFilter) ([]domain.CommissionSubmission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Stage != "" {
		args = append(args, string(filter.Stage))
		query += ` AND stage = $` + strconv.Itoa(len(args))
	}
	if filter.SubmitterID != "" {
		args = append(args, filter.SubmitterID)
		query += ` AND submitter_id = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query commissions", err)
	}
	defer rows.Close()

	commissions := []domain.CommissionSubmission{}
	for rows.Next() {
		comm, err := scanCommission(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan commission row", err)
		}
		commissions = append(commissions, *comm)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating commission rows", err)
	}
	return commissions, nil
}

// UpdateCommissionInTx writes the workflow-mutable fields guarded by the
// stage and status the caller read. Zero affected rows means another
// operation moved the commission first; that surfaces as ErrConflict so the
// caller re-reads instead of silently overwriting.
func (r *PgxCommissionRepository) UpdateCommissionInTx(ctx context.Context, tx pgx.Tx, commission domain.CommissionSubmission, expectedStage domain.ApprovalStage, expectedStatus domain.CommissionStatus) error {
	m := mapping.ToModelCommission(commission)
	query := `
		UPDATE commissions SET
			status = $2, stage = $3, revision_count = $4,
			approved_amount = $5,
			manager_approved_at = $6, manager_approved_by = $7,
			accounting_approved_at = $8, accounting_approved_by = $9,
			admin_approved_at = $10, admin_approved_by = $11,
			approved_at = $12, approved_by = $13,
			denied_at = $14, denied_by = $15, rejection_reason = $16,
			last_updated_at = $17, last_updated_by = $18
		WHERE commission_id = $1 AND stage = $19 AND status = $20;
	`
	ct, err := tx.Exec(ctx, query,
		m.CommissionID,
		m.Status, m.Stage, m.RevisionCount,
		m.ApprovedAmount,
		m.ManagerApprovedAt, m.ManagerApprovedBy,
		m.AccountingApprovedAt, m.AccountingApprovedBy,
		m.AdminApprovedAt, m.AdminApprovedBy,
		m.ApprovedAt, m.ApprovedBy,
		m.DeniedAt, m.DeniedBy, m.RejectionReason,
		m.LastUpdatedAt, m.LastUpdatedBy,
		string(expectedStage), string(expectedStatus),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update commission "+m.CommissionID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
