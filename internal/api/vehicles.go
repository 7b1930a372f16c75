package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/medsupply/internal/model"
	"github.com/erazemk/medsupply/internal/registry"
)

// VehiclesHandler handles ambulance endpoints.
type VehiclesHandler struct {
	Reg     *registry.Registry
	persist *persister
}

type createVehicleRequest struct {
	VehicleID          string              `json:"vehicle_id"`
	Status             model.VehicleStatus `json:"status"`
	OxygenLevelPercent *float64            `json:"oxygen_level_percent"`
	FuelLevelPercent   *float64            `json:"fuel_level_percent"`
}

type assignEquipmentRequest struct {
	ItemID string `json:"item_id"`
}

type levelsRequest struct {
	OxygenLevelPercent *float64 `json:"oxygen_level_percent"`
	FuelLevelPercent   *float64 `json:"fuel_level_percent"`
}

type statusRequest struct {
	Status model.VehicleStatus `json:"status"`
}

// List handles GET /api/vehicles.
func (h *VehiclesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Reg.Ambulances())
}

// Create handles POST /api/vehicles. Omitted levels default to full and an
// omitted status to Active.
func (h *VehiclesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vehicle := model.NewAmbulanceVehicle(req.VehicleID)
	if req.Status != "" {
		vehicle.Status = req.Status
	}
	if req.OxygenLevelPercent != nil {
		vehicle.OxygenLevelPercent = *req.OxygenLevelPercent
	}
	if req.FuelLevelPercent != nil {
		vehicle.FuelLevelPercent = *req.FuelLevelPercent
	}
	if err := vehicle.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Reg.RegisterAmbulance(vehicle)
	h.persist.save(r.Context())

	slog.Info("ambulance registered", "vehicle", vehicle.VehicleID, "status", vehicle.Status)
	h.respondVehicle(w, http.StatusCreated, vehicle.VehicleID)
}

// Get handles GET /api/vehicles/{id}.
func (h *VehiclesHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondVehicle(w, http.StatusOK, r.PathValue("id"))
}

// AssignEquipment handles POST /api/vehicles/{id}/equipment.
func (h *VehiclesHandler) AssignEquipment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req assignEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == "" {
		jsonError(w, http.StatusBadRequest, "item_id required")
		return
	}

	if err := h.Reg.AssignEquipmentToAmbulance(id, req.ItemID); err != nil {
		registryError(w, err)
		return
	}
	h.persist.save(r.Context())

	slog.Info("equipment assigned", "vehicle", id, "item", req.ItemID)
	h.respondVehicle(w, http.StatusOK, id)
}

// UpdateLevels handles PUT /api/vehicles/{id}/levels.
func (h *VehiclesHandler) UpdateLevels(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req levelsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OxygenLevelPercent == nil || req.FuelLevelPercent == nil {
		jsonError(w, http.StatusBadRequest, "oxygen_level_percent and fuel_level_percent required")
		return
	}

	if err := h.Reg.UpdateAmbulanceLevels(id, *req.OxygenLevelPercent, *req.FuelLevelPercent); err != nil {
		registryError(w, err)
		return
	}
	h.persist.save(r.Context())

	slog.Info("ambulance levels updated", "vehicle", id, "oxygen", *req.OxygenLevelPercent, "fuel", *req.FuelLevelPercent)
	h.respondVehicle(w, http.StatusOK, id)
}

// SetStatus handles PUT /api/vehicles/{id}/status.
func (h *VehiclesHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid status: %q", req.Status))
		return
	}

	if err := h.Reg.SetAmbulanceStatus(id, req.Status); err != nil {
		registryError(w, err)
		return
	}
	h.persist.save(r.Context())

	slog.Info("ambulance status changed", "vehicle", id, "status", req.Status)
	h.respondVehicle(w, http.StatusOK, id)
}

func (h *VehiclesHandler) respondVehicle(w http.ResponseWriter, status int, id string) {
	vehicle, err := h.Reg.Ambulance(id)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, status, vehicle)
}
