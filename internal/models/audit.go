package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevisionLog is the database row shape for one revision request.
type RevisionLog struct {
	RevisionID      string              `db:"revision_id"`
	CommissionID    string              `db:"commission_id"`
	RevisionNumber  int                 `db:"revision_number"`
	RequestedByID   string              `db:"requested_by_id"`
	RequestedByName string              `db:"requested_by_name"`
	RequestedByRole string              `db:"requested_by_role"`
	Reason          string              `db:"reason"`
	PreviousAmount  decimal.Decimal     `db:"previous_amount"`
	NewAmount       decimal.NullDecimal `db:"new_amount"`
	CreatedAt       time.Time           `db:"created_at"`
}

// StatusLog is the database row shape for one status transition.
type StatusLog struct {
	StatusLogID    string    `db:"status_log_id"`
	CommissionID   string    `db:"commission_id"`
	PreviousStatus string    `db:"previous_status"`
	NewStatus      string    `db:"new_status"`
	ChangedBy      string    `db:"changed_by"`
	Notes          string    `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
}

// DeniedJobNumber is the database row shape for a denial lock.
type DeniedJobNumber struct {
	JobNumber    string    `db:"job_number"`
	CommissionID string    `db:"commission_id"`
	DeniedBy     string    `db:"denied_by"`
	DeniedAt     time.Time `db:"denied_at"`
	DenialReason string    `db:"denial_reason"`
}
