package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/medsupply/internal/model"
	"github.com/erazemk/medsupply/internal/registry"
)

// StaffHandler handles staff endpoints.
type StaffHandler struct {
	Reg     *registry.Registry
	persist *persister
}

type assignmentRequest struct {
	Shift     string  `json:"shift"`
	VehicleID *string `json:"vehicle_id"`
}

// List handles GET /api/staff.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Reg.StaffMembers())
}

// Create handles POST /api/staff. An assigned_vehicle_id must name a
// registered ambulance.
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var staff model.StaffMember
	if err := decodeJSON(r, &staff); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := staff.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if staff.AssignedVehicleID != nil {
		// Vehicles are never removed, so the check stays true once passed.
		if _, err := h.Reg.Ambulance(*staff.AssignedVehicleID); err != nil {
			registryError(w, err)
			return
		}
	}

	h.Reg.AddStaffMember(&staff)
	h.persist.save(r.Context())

	slog.Info("staff member added", "staff", staff.StaffID, "role", staff.Role)
	h.respondStaff(w, http.StatusCreated, staff.StaffID)
}

// Get handles GET /api/staff/{id}.
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondStaff(w, http.StatusOK, r.PathValue("id"))
}

// Assign handles PUT /api/staff/{id}/assignment. A null vehicle_id takes the
// staff member off any vehicle.
func (h *StaffHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req assignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Reg.AssignStaff(id, req.Shift, req.VehicleID); err != nil {
		registryError(w, err)
		return
	}
	h.persist.save(r.Context())

	vehicle := ""
	if req.VehicleID != nil {
		vehicle = *req.VehicleID
	}
	slog.Info("staff assigned", "staff", id, "shift", req.Shift, "vehicle", vehicle)
	h.respondStaff(w, http.StatusOK, id)
}

func (h *StaffHandler) respondStaff(w http.ResponseWriter, status int, id string) {
	staff, err := h.Reg.StaffMember(id)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, status, staff)
}
