package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevisionLogEntry is an immutable record of one revision request. Entries
// are created only by the workflow engine and never mutated or deleted.
type RevisionLogEntry struct {
	RevisionID      string           `json:"revisionID"` // Primary Key (UUID)
	CommissionID    string           `json:"commissionID"`
	RevisionNumber  int              `json:"revisionNumber"` // Equals revisionCount at time of write
	RequestedByID   string           `json:"requestedByID"`
	RequestedByName string           `json:"requestedByName"`
	RequestedByRole UserRole         `json:"requestedByRole"` // Role snapshot at request time
	Reason          string           `json:"reason"`
	PreviousAmount  decimal.Decimal  `json:"previousAmount"`
	NewAmount       *decimal.Decimal `json:"newAmount,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// StatusLogEntry is an immutable audit record written on every successful
// state transition, including revisions and denials.
type StatusLogEntry struct {
	StatusLogID    string           `json:"statusLogID"` // Primary Key (UUID)
	CommissionID   string           `json:"commissionID"`
	PreviousStatus CommissionStatus `json:"previousStatus"`
	NewStatus      CommissionStatus `json:"newStatus"`
	ChangedBy      string           `json:"changedBy"` // UserID reference
	Notes          string           `json:"notes"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// DeniedJobNumber is a permanent blacklist entry. A job number may appear at
// most once; once created it is never updated or removed.
type DeniedJobNumber struct {
	JobNumber    string    `json:"jobNumber"` // Primary Key, exactly 4 digits
	CommissionID string    `json:"commissionID"`
	DeniedBy     string    `json:"deniedBy"` // UserID reference
	DeniedAt     time.Time `json:"deniedAt"`
	DenialReason string    `json:"denialReason"`
}
