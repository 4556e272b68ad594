package services

import (
	"context"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
)

// WorkflowSvcFacade is the approval workflow engine contract. Every call
// carries the acting user explicitly; each operation is applied as one
// atomic transaction or not at all.
type WorkflowSvcFacade interface {
	// Approve advances the commission one step along the approval chain, or
	// finalizes it when the last required approver signs off.
	Approve(ctx context.Context, commissionID string, actor domain.Actor, cmd dto.ApproveCommand) (*domain.CommissionSubmission, error)

	// RequestRevision sends the commission back to the manager stage with a
	// required reason, incrementing its revision counter.
	RequestRevision(ctx context.Context, commissionID string, actor domain.Actor, cmd dto.RequestRevisionCommand) (*domain.CommissionSubmission, error)

	// Deny terminally denies the commission and permanently blacklists its
	// job number. Denial of an already-locked job number is idempotent.
	Deny(ctx context.Context, commissionID string, actor domain.Actor, cmd dto.DenyCommand) (*domain.CommissionSubmission, error)
}
