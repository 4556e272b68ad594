package domain

import "github.com/shopspring/decimal"

// NotificationType classifies the outbound event emitted after a workflow
// operation commits.
type NotificationType string

const (
	NotificationApproved         NotificationType = "approved"
	NotificationDenied           NotificationType = "denied"
	NotificationRevisionRequired NotificationType = "revision_required"
	// NotificationStageAdvanced is emitted for non-terminal approvals;
	// routing to the next approver is the dispatcher's concern.
	NotificationStageAdvanced NotificationType = "stage_advanced"
)

// NotificationEvent is the structured payload handed to the dispatcher.
// Delivery is best-effort: a failed dispatch never rolls back the workflow
// transition that produced it.
type NotificationEvent struct {
	Type           NotificationType `json:"type"`
	CommissionID   string           `json:"commissionID"`
	JobName        string           `json:"jobName"`
	JobAddress     string           `json:"jobAddress"`
	SubmitterName  string           `json:"submitterName"`
	SubmissionType string           `json:"submissionType"`
	ContractAmount *decimal.Decimal `json:"contractAmount,omitempty"`
	NetOwed        *decimal.Decimal `json:"netOwed,omitempty"`
	Notes          string           `json:"notes"`
	Status         CommissionStatus `json:"status"`
}
