package registry

import "github.com/erazemk/medsupply/internal/model"

// CreateApprovalRequest stores request as Pending, replacing any request with
// the same id. Status and sign-off fields on the input are ignored.
func (r *Registry) CreateApprovalRequest(request *model.ApprovalRequest) {
	c := request.Clone()
	c.Status = model.RequestStatusPending
	c.ClinicallyApprovedBy = nil
	c.FulfilledBy = nil

	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[c.RequestID] = c
}

// ApprovalRequest returns the request with the given id.
func (r *Registry) ApprovalRequest(requestID string) (*model.ApprovalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[requestID]
	if !ok {
		return nil, notFound(CollectionRequests, requestID)
	}
	return req.Clone(), nil
}

// ApprovalRequests returns all requests ordered by id.
func (r *Registry) ApprovalRequests() []*model.ApprovalRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSorted(r.requests, (*model.ApprovalRequest).Clone)
}

// ClinicallyApproveRequest moves a Pending request to Clinically Approved.
func (r *Registry) ClinicallyApproveRequest(requestID, approver string) error {
	return r.advance(requestID, model.RequestStatusPending, func(req *model.ApprovalRequest) {
		req.Status = model.RequestStatusClinicallyApproved
		req.ClinicallyApprovedBy = &approver
	})
}

// FulfillRequest moves a Clinically Approved request to Fulfilled.
func (r *Registry) FulfillRequest(requestID, fulfiller string) error {
	return r.advance(requestID, model.RequestStatusClinicallyApproved, func(req *model.ApprovalRequest) {
		req.Status = model.RequestStatusFulfilled
		req.FulfilledBy = &fulfiller
	})
}

// advance applies fn to the request if it is currently in status from.
func (r *Registry) advance(requestID string, from model.RequestStatus, fn func(*model.ApprovalRequest)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[requestID]
	if !ok {
		return notFound(CollectionRequests, requestID)
	}
	if req.Status != from {
		return &InvalidStateError{RequestID: requestID, Status: req.Status, Want: from}
	}
	fn(req)
	return nil
}
