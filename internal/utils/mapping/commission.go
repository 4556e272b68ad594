// Package mapping converts between database row models and domain entities.
package mapping

import (
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}

// ToModelCommission converts a domain commission to its database row shape.
func ToModelCommission(d domain.CommissionSubmission) models.Commission {
	return models.Commission{
		CommissionID:   d.CommissionID,
		JobNumber:      d.JobNumber,
		JobName:        d.JobName,
		JobAddress:     d.JobAddress,
		SubmitterID:    d.SubmitterID,
		SubmitterName:  d.SubmitterName,
		SubmissionRole: string(d.SubmissionRole),
		Status:         string(d.Status),
		Stage:          string(d.Stage),
		RevisionCount:  d.RevisionCount,

		RequestedAmount: d.RequestedAmount,
		ApprovedAmount:  toNullDecimal(d.ApprovedAmount),
		ContractAmount:  toNullDecimal(d.ContractAmount),
		NetOwed:         toNullDecimal(d.NetOwed),

		ManagerApprovedAt:    d.ManagerApprovedAt,
		ManagerApprovedBy:    d.ManagerApprovedBy,
		AccountingApprovedAt: d.AccountingApprovedAt,
		AccountingApprovedBy: d.AccountingApprovedBy,
		AdminApprovedAt:      d.AdminApprovedAt,
		AdminApprovedBy:      d.AdminApprovedBy,
		ApprovedAt:           d.ApprovedAt,
		ApprovedBy:           d.ApprovedBy,
		DeniedAt:             d.DeniedAt,
		DeniedBy:             d.DeniedBy,
		RejectionReason:      d.RejectionReason,

		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainCommission converts a database row to the domain entity.
func ToDomainCommission(m models.Commission) domain.CommissionSubmission {
	return domain.CommissionSubmission{
		CommissionID:   m.CommissionID,
		JobNumber:      m.JobNumber,
		JobName:        m.JobName,
		JobAddress:     m.JobAddress,
		SubmitterID:    m.SubmitterID,
		SubmitterName:  m.SubmitterName,
		SubmissionRole: domain.SubmissionRole(m.SubmissionRole),
		Status:         domain.CommissionStatus(m.Status),
		Stage:          domain.ApprovalStage(m.Stage),
		RevisionCount:  m.RevisionCount,

		RequestedAmount: m.RequestedAmount,
		ApprovedAmount:  fromNullDecimal(m.ApprovedAmount),
		ContractAmount:  fromNullDecimal(m.ContractAmount),
		NetOwed:         fromNullDecimal(m.NetOwed),

		ManagerApprovedAt:    m.ManagerApprovedAt,
		ManagerApprovedBy:    m.ManagerApprovedBy,
		AccountingApprovedAt: m.AccountingApprovedAt,
		AccountingApprovedBy: m.AccountingApprovedBy,
		AdminApprovedAt:      m.AdminApprovedAt,
		AdminApprovedBy:      m.AdminApprovedBy,
		ApprovedAt:           m.ApprovedAt,
		ApprovedBy:           m.ApprovedBy,
		DeniedAt:             m.DeniedAt,
		DeniedBy:             m.DeniedBy,
		RejectionReason:      m.RejectionReason,

		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainRevisionLog converts a revision log row to the domain entity.
func ToDomainRevisionLog(m models.RevisionLog) domain.RevisionLogEntry {
	return domain.RevisionLogEntry{
		RevisionID:      m.RevisionID,
		CommissionID:    m.CommissionID,
		RevisionNumber:  m.RevisionNumber,
		RequestedByID:   m.RequestedByID,
		RequestedByName: m.RequestedByName,
		RequestedByRole: domain.UserRole(m.RequestedByRole),
		Reason:          m.Reason,
		PreviousAmount:  m.PreviousAmount,
		NewAmount:       fromNullDecimal(m.NewAmount),
		CreatedAt:       m.CreatedAt,
	}
}

// ToModelRevisionLog converts a domain revision entry to its row shape.
func ToModelRevisionLog(d domain.RevisionLogEntry) models.RevisionLog {
	return models.RevisionLog{
		RevisionID:      d.RevisionID,
		CommissionID:    d.CommissionID,
		RevisionNumber:  d.RevisionNumber,
		RequestedByID:   d.RequestedByID,
		RequestedByName: d.RequestedByName,
		RequestedByRole: string(d.RequestedByRole),
		Reason:          d.Reason,
		PreviousAmount:  d.PreviousAmount,
		NewAmount:       toNullDecimal(d.NewAmount),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainStatusLog converts a status log row to the domain entity.
func ToDomainStatusLog(m models.StatusLog) domain.StatusLogEntry {
	return domain.StatusLogEntry{
		StatusLogID:    m.StatusLogID,
		CommissionID:   m.CommissionID,
		PreviousStatus: domain.CommissionStatus(m.PreviousStatus),
		NewStatus:      domain.CommissionStatus(m.NewStatus),
		ChangedBy:      m.ChangedBy,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainDeniedJobNumber converts a denial lock row to the domain entity.
func ToDomainDeniedJobNumber(m models.DeniedJobNumber) domain.DeniedJobNumber {
	return domain.DeniedJobNumber{
		JobNumber:    m.JobNumber,
		CommissionID: m.CommissionID,
		DeniedBy:     m.DeniedBy,
		DeniedAt:     m.DeniedAt,
		DenialReason: m.DenialReason,
	}
}
