package dto

import (
	"time"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCommissionRequest is the submission-form payload.
type CreateCommissionRequest struct {
	JobNumber       string           `json:"jobNumber" binding:"required,jobnumber"`
	JobName         string           `json:"jobName" binding:"required"`
	JobAddress      string           `json:"jobAddress"`
	RequestedAmount decimal.Decimal  `json:"requestedAmount" binding:"required"`
	ContractAmount  *decimal.Decimal `json:"contractAmount"`
	NetOwed         *decimal.Decimal `json:"netOwed"`
}

// CommissionResponse is the API representation of a commission submission.
type CommissionResponse struct {
	CommissionID    string                  `json:"commissionID"`
	JobNumber       string                  `json:"jobNumber"`
	JobName         string                  `json:"jobName"`
	JobAddress      string                  `json:"jobAddress"`
	SubmitterID     string                  `json:"submitterID"`
	SubmitterName   string                  `json:"submitterName"`
	SubmissionRole  domain.SubmissionRole   `json:"submissionRole"`
	Status          domain.CommissionStatus `json:"status"`
	Stage           domain.ApprovalStage    `json:"stage"`
	RevisionCount   int                     `json:"revisionCount"`
	RequestedAmount decimal.Decimal         `json:"requestedAmount"`
	ApprovedAmount  *decimal.Decimal        `json:"approvedAmount,omitempty"`
	ContractAmount  *decimal.Decimal        `json:"contractAmount,omitempty"`
	NetOwed         *decimal.Decimal        `json:"netOwed,omitempty"`
	ApprovedAt      *time.Time              `json:"approvedAt,omitempty"`
	ApprovedBy      *string                 `json:"approvedBy,omitempty"`
	DeniedAt        *time.Time              `json:"deniedAt,omitempty"`
	DeniedBy        *string                 `json:"deniedBy,omitempty"`
	RejectionReason *string                 `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	LastUpdatedAt   time.Time               `json:"lastUpdatedAt"`
}

// ToCommissionResponse maps the domain entity to its API shape.
func ToCommissionResponse(c domain.CommissionSubmission) CommissionResponse {
	return CommissionResponse{
		CommissionID:    c.CommissionID,
		JobNumber:       c.JobNumber,
		JobName:         c.JobName,
		JobAddress:      c.JobAddress,
		SubmitterID:     c.SubmitterID,
		SubmitterName:   c.SubmitterName,
		SubmissionRole:  c.SubmissionRole,
		Status:          c.Status,
		Stage:           c.Stage,
		RevisionCount:   c.RevisionCount,
		RequestedAmount: c.RequestedAmount,
		ApprovedAmount:  c.ApprovedAmount,
		ContractAmount:  c.ContractAmount,
		NetOwed:         c.NetOwed,
		ApprovedAt:      c.ApprovedAt,
		ApprovedBy:      c.ApprovedBy,
		DeniedAt:        c.DeniedAt,
		DeniedBy:        c.DeniedBy,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
		LastUpdatedAt:   c.LastUpdatedAt,
	}
}

// RevisionLogResponse is the API representation of a revision entry.
type RevisionLogResponse struct {
	RevisionID      string           `json:"revisionID"`
	CommissionID    string           `json:"commissionID"`
	RevisionNumber  int              `json:"revisionNumber"`
	RequestedByID   string           `json:"requestedByID"`
	RequestedByName string           `json:"requestedByName"`
	RequestedByRole domain.UserRole  `json:"requestedByRole"`
	Reason          string           `json:"reason"`
	PreviousAmount  decimal.Decimal  `json:"previousAmount"`
	NewAmount       *decimal.Decimal `json:"newAmount,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// StatusLogResponse is the API representation of one audit entry.
type StatusLogResponse struct {
	StatusLogID    string                  `json:"statusLogID"`
	CommissionID   string                  `json:"commissionID"`
	PreviousStatus domain.CommissionStatus `json:"previousStatus"`
	NewStatus      domain.CommissionStatus `json:"newStatus"`
	ChangedBy      string                  `json:"changedBy"`
	Notes          string                  `json:"notes"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// ToRevisionLogResponse maps a revision entry to its API shape.
func ToRevisionLogResponse(e domain.RevisionLogEntry) RevisionLogResponse {
	return RevisionLogResponse{
		RevisionID:      e.RevisionID,
		CommissionID:    e.CommissionID,
		RevisionNumber:  e.RevisionNumber,
		RequestedByID:   e.RequestedByID,
		RequestedByName: e.RequestedByName,
		RequestedByRole: e.RequestedByRole,
		Reason:          e.Reason,
		PreviousAmount:  e.PreviousAmount,
		NewAmount:       e.NewAmount,
		CreatedAt:       e.CreatedAt,
	}
}

// ToStatusLogResponse maps an audit entry to its API shape.
func ToStatusLogResponse(e domain.StatusLogEntry) StatusLogResponse {
	return StatusLogResponse{
		StatusLogID:    e.StatusLogID,
		CommissionID:   e.CommissionID,
		PreviousStatus: e.PreviousStatus,
		NewStatus:      e.NewStatus,
		ChangedBy:      e.ChangedBy,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
	}
}

// DeniedJobNumberResponse reports a lock-registry entry.
type DeniedJobNumberResponse struct {
	JobNumber    string    `json:"jobNumber"`
	CommissionID string    `json:"commissionID"`
	DeniedBy     string    `json:"deniedBy"`
	DeniedAt     time.Time `json:"deniedAt"`
	DenialReason string    `json:"denialReason"`
}
