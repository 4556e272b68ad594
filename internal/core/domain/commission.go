package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus is the caller-facing outcome classification of a submission.
type CommissionStatus string

const (
	StatusPendingReview    CommissionStatus = "PENDING_REVIEW"
	StatusRevisionRequired CommissionStatus = "REVISION_REQUIRED"
	StatusDenied           CommissionStatus = "DENIED"
	StatusApproved         CommissionStatus = "APPROVED"
)

var validStatuses = map[CommissionStatus]bool{
	StatusPendingReview:    true,
	StatusRevisionRequired: true,
	StatusDenied:           true,
	StatusApproved:         true,
}

// IsValid returns true if the status is a known commission status.
func (s CommissionStatus) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal returns true when no further workflow operation may change the status.
func (s CommissionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// ApprovalStage is the position in the fixed three-step approval chain,
// independent of the coarse-grained status.
type ApprovalStage string

const (
	StagePendingManager    ApprovalStage = "PENDING_MANAGER"
	StagePendingAccounting ApprovalStage = "PENDING_ACCOUNTING"
	StagePendingAdmin      ApprovalStage = "PENDING_ADMIN"
	StageCompleted         ApprovalStage = "COMPLETED"
)

var validStages = map[ApprovalStage]bool{
	StagePendingManager:    true,
	StagePendingAccounting: true,
	StagePendingAdmin:      true,
	StageCompleted:         true,
}

// IsValid returns true if the stage is a known approval stage.
func (s ApprovalStage) IsValid() bool {
	return validStages[s]
}

// IsTerminal returns true once the approval chain has finished.
func (s ApprovalStage) IsTerminal() bool {
	return s == StageCompleted
}

// SubmissionRole records whether the original submitter was a regular rep
// or a manager. Manager submissions require a third (admin) approval stage.
type SubmissionRole string

const (
	SubmissionRoleRep     SubmissionRole = "REP"
	SubmissionRoleManager SubmissionRole = "MANAGER"
)

// IsValid returns true if the submission role is known.
func (r SubmissionRole) IsValid() bool {
	return r == SubmissionRoleRep || r == SubmissionRoleManager
}

// CommissionSubmission is a single commission request moving through the
// governed approval chain. It is mutated exclusively through the workflow
// operations and never deleted; once terminal it is immutable.
type CommissionSubmission struct {
	CommissionID   string           `json:"commissionID"` // Primary Key (UUID)
	JobNumber      string           `json:"jobNumber"`    // 4-digit job identifier
	JobName        string           `json:"jobName"`
	JobAddress     string           `json:"jobAddress"`
	SubmitterID    string           `json:"submitterID"` // UserID of the submitting rep/manager
	SubmitterName  string           `json:"submitterName"`
	SubmissionRole SubmissionRole   `json:"submissionRole"` // Immutable, set at creation
	Status         CommissionStatus `json:"status"`
	Stage          ApprovalStage    `json:"stage"`
	RevisionCount  int              `json:"revisionCount"`

	RequestedAmount decimal.Decimal  `json:"requestedAmount"`
	ApprovedAmount  *decimal.Decimal `json:"approvedAmount,omitempty"` // Set on confirm/override
	ContractAmount  *decimal.Decimal `json:"contractAmount,omitempty"`
	NetOwed         *decimal.Decimal `json:"netOwed,omitempty"`

	ManagerApprovedAt    *time.Time `json:"managerApprovedAt,omitempty"`
	ManagerApprovedBy    *string    `json:"managerApprovedBy,omitempty"`
	AccountingApprovedAt *time.Time `json:"accountingApprovedAt,omitempty"`
	AccountingApprovedBy *string    `json:"accountingApprovedBy,omitempty"`
	AdminApprovedAt      *time.Time `json:"adminApprovedAt,omitempty"`
	AdminApprovedBy      *string    `json:"adminApprovedBy,omitempty"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy           *string    `json:"approvedBy,omitempty"`
	DeniedAt             *time.Time `json:"deniedAt,omitempty"`
	DeniedBy             *string    `json:"deniedBy,omitempty"`
	RejectionReason      *string    `json:"rejectionReason,omitempty"`

	AuditFields
}

// IsTerminal reports whether the submission has reached a final decision.
func (c *CommissionSubmission) IsTerminal() bool {
	return c.Stage.IsTerminal() || c.Status.IsTerminal()
}

// EffectiveAmount is the amount currently on the table: the latest override
// if an approver ever modified it, otherwise the originally requested amount.
func (c *CommissionSubmission) EffectiveAmount() decimal.Decimal {
	if c.ApprovedAmount != nil {
		return *c.ApprovedAmount
	}
	return c.RequestedAmount
}

// RequiredApproverRole returns the role that must act at the given stage.
// Completed has no approver; the second return value reports whether the
// stage accepts approvals at all.
func RequiredApproverRole(stage ApprovalStage) (UserRole, bool) {
	switch stage {
	case StagePendingManager:
		return RoleManager, true
	case StagePendingAccounting:
		return RoleAccounting, true
	case StagePendingAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}
