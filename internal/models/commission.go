package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is the database row shape for a commission submission.
// Status, stage and role values are stored as the upper-case string enums
// defined in the domain package.
type Commission struct {
	CommissionID   string `db:"commission_id"`
	JobNumber      string `db:"job_number"`
	JobName        string `db:"job_name"`
	JobAddress     string `db:"job_address"`
	SubmitterID    string `db:"submitter_id"`
	SubmitterName  string `db:"submitter_name"`
	SubmissionRole string `db:"submission_role"`
	Status         string `db:"status"`
	Stage          string `db:"stage"`
	RevisionCount  int    `db:"revision_count"`

	RequestedAmount decimal.Decimal     `db:"requested_amount"`
	ApprovedAmount  decimal.NullDecimal `db:"approved_amount"`
	ContractAmount  decimal.NullDecimal `db:"contract_amount"`
	NetOwed         decimal.NullDecimal `db:"net_owed"`

	ManagerApprovedAt    *time.Time `db:"manager_approved_at"`
	ManagerApprovedBy    *string    `db:"manager_approved_by"`
	AccountingApprovedAt *time.Time `db:"accounting_approved_at"`
	AccountingApprovedBy *string    `db:"accounting_approved_by"`
	AdminApprovedAt      *time.Time `db:"admin_approved_at"`
	AdminApprovedBy      *string    `db:"admin_approved_by"`
	ApprovedAt           *time.Time `db:"approved_at"`
	ApprovedBy           *string    `db:"approved_by"`
	DeniedAt             *time.Time `db:"denied_at"`
	DeniedBy             *string    `db:"denied_by"`
	RejectionReason      *string    `db:"rejection_reason"`

	AuditFields
}

// AuditFields holds the standard audit columns shared by mutable tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
