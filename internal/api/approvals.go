package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/erazemk/medsupply/internal/model"
	"github.com/erazemk/medsupply/internal/registry"
)

// ApprovalsHandler handles the approval workflow endpoints.
type ApprovalsHandler struct {
	Reg     *registry.Registry
	persist *persister
}

type createApprovalRequest struct {
	RequestID   string `json:"request_id"`
	RequestType string `json:"request_type"`
	RequestedBy string `json:"requested_by"`
}

type signOffRequest struct {
	Approver  string `json:"approver"`
	Fulfiller string `json:"fulfiller"`
}

// List handles GET /api/approvals.
func (h *ApprovalsHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Reg.ApprovalRequests())
}

// Create handles POST /api/approvals. A missing request_id is generated and
// a missing requested_by is taken from the bearer token; without either the
// request is rejected.
func (h *ApprovalsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createApprovalRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request := &model.ApprovalRequest{
		RequestID:   req.RequestID,
		RequestType: req.RequestType,
		RequestedBy: req.RequestedBy,
		Status:      model.RequestStatusPending,
	}
	if request.RequestID == "" {
		request.RequestID = uuid.NewString()
	}
	if request.RequestedBy == "" {
		request.RequestedBy = actor(r, "")
	}
	if request.RequestedBy == "" {
		jsonError(w, http.StatusBadRequest, "requested_by or a bearer token is required")
		return
	}
	if err := request.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Reg.CreateApprovalRequest(request)
	h.persist.save(r.Context())

	slog.Info("approval request created", "request", request.RequestID, "type", request.RequestType, "by", request.RequestedBy)
	h.respondRequest(w, http.StatusCreated, request.RequestID)
}

// Get handles GET /api/approvals/{id}.
func (h *ApprovalsHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondRequest(w, http.StatusOK, r.PathValue("id"))
}

// Approve handles POST /api/approvals/{id}/approve.
func (h *ApprovalsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	req, ok := decodeSignOff(w, r)
	if !ok {
		return
	}
	approver := actor(r, req.Approver)
	if approver == "" {
		jsonError(w, http.StatusBadRequest, "approver required")
		return
	}

	if err := h.Reg.ClinicallyApproveRequest(id, approver); err != nil {
		registryError(w, err)
		return
	}
	h.persist.save(r.Context())

	slog.Info("approval request clinically approved", "request", id, "approver", approver)
	h.respondRequest(w, http.StatusOK, id)
}

// Fulfill handles POST /api/approvals/{id}/fulfill.
func (h *ApprovalsHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	req, ok := decodeSignOff(w, r)
	if !ok {
		return
	}
	fulfiller := actor(r, req.Fulfiller)
	if fulfiller == "" {
		jsonError(w, http.StatusBadRequest, "fulfiller required")
		return
	}

	if err := h.Reg.FulfillRequest(id, fulfiller); err != nil {
		registryError(w, err)
		return
	}
	h.persist.save(r.Context())

	slog.Info("approval request fulfilled", "request", id, "fulfiller", fulfiller)
	h.respondRequest(w, http.StatusOK, id)
}

// decodeSignOff reads an optional sign-off body; an empty body is allowed
// when the actor comes from the token.
func decodeSignOff(w http.ResponseWriter, r *http.Request) (signOffRequest, bool) {
	var req signOffRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

func (h *ApprovalsHandler) respondRequest(w http.ResponseWriter, status int, id string) {
	request, err := h.Reg.ApprovalRequest(id)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, status, request)
}
