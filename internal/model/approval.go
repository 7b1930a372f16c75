package model

import "errors"

// RequestStatus is the position of an approval request in its workflow.
// Requests only move forward: Pending, then Clinically Approved, then Fulfilled.
type RequestStatus string

// Request statuses.
const (
	RequestStatusPending            RequestStatus = "Pending"
	RequestStatusClinicallyApproved RequestStatus = "Clinically Approved"
	RequestStatusFulfilled          RequestStatus = "Fulfilled"
)

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusClinicallyApproved, RequestStatusFulfilled:
		return true
	}
	return false
}

// ApprovalRequest is a procurement or dispatch request awaiting sign-off.
type ApprovalRequest struct {
	RequestID            string        `json:"request_id"`
	RequestType          string        `json:"request_type"`
	RequestedBy          string        `json:"requested_by"`
	Status               RequestStatus `json:"status"`
	ClinicallyApprovedBy *string       `json:"clinically_approved_by,omitempty"`
	FulfilledBy          *string       `json:"fulfilled_by,omitempty"`
}

// Validate checks the fields a caller must supply.
func (r *ApprovalRequest) Validate() error {
	var errs []error

	if r.RequestID == "" {
		errs = append(errs, errors.New("request_id is required"))
	}
	if r.RequestType == "" {
		errs = append(errs, errors.New("request_type is required"))
	}
	if r.RequestedBy == "" {
		errs = append(errs, errors.New("requested_by is required"))
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the request.
func (r *ApprovalRequest) Clone() *ApprovalRequest {
	c := *r
	c.ClinicallyApprovedBy = cloneString(r.ClinicallyApprovedBy)
	c.FulfilledBy = cloneString(r.FulfilledBy)
	return &c
}
