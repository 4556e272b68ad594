package dto

import "github.com/shopspring/decimal"

// The workflow commands are deliberately separate types, one per operation,
// each carrying exactly the fields that operation may set.

// ApproveCommand approves a commission at its current stage. An
// ApprovedAmount differing from the requested amount requires Notes.
type ApproveCommand struct {
	ApprovedAmount *decimal.Decimal `json:"approvedAmount"`
	Notes          string           `json:"notes"`
}

// RequestRevisionCommand sends the commission back to the first stage.
type RequestRevisionCommand struct {
	Reason string `json:"reason" binding:"required"`
	// PreviousAmount overrides the amount recorded in the revision log;
	// defaults to the commission's current effective amount.
	PreviousAmount *decimal.Decimal `json:"previousAmount"`
	NewAmount      *decimal.Decimal `json:"newAmount"`
}

// DenyCommand terminally denies the commission and blacklists its job number.
type DenyCommand struct {
	Reason string `json:"reason" binding:"required"`
	// JobNumber overrides the job number to lock; defaults to the
	// commission's own.
	JobNumber string `json:"jobNumber"`
}
