package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/medsupply/internal/model"
	"github.com/erazemk/medsupply/internal/registry"
)

// ItemsHandler handles inventory endpoints.
type ItemsHandler struct {
	Reg     *registry.Registry
	persist *persister
}

type maintenanceRequest struct {
	ServiceDate string `json:"service_date"`
	Notes       string `json:"notes"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Reg.InventoryItems())
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.InventoryItem
	if err := decodeJSON(r, &item); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := item.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Reg.AddInventoryItem(&item)
	h.persist.save(r.Context())

	slog.Info("inventory item added", "item", item.ItemID, "type", item.AssetType, "quantity", item.Quantity)
	created, err := h.Reg.InventoryItem(item.ItemID)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Reg.InventoryItem(r.PathValue("id"))
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// AddMaintenance handles POST /api/items/{id}/maintenance.
func (h *ItemsHandler) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	serviceDate, err := parseDate(req.ServiceDate)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "service_date must be YYYY-MM-DD or RFC 3339")
		return
	}

	record := model.MaintenanceRecord{ServiceDate: serviceDate, Notes: req.Notes}
	if err := h.Reg.RecordMaintenance(id, record); err != nil {
		registryError(w, err)
		return
	}
	h.persist.save(r.Context())

	slog.Info("maintenance recorded", "item", id, "date", serviceDate.Format(time.DateOnly))
	item, err := h.Reg.InventoryItem(id)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
