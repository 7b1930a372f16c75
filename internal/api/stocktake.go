package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/medsupply/internal/model"
	"github.com/erazemk/medsupply/internal/registry"
	"github.com/erazemk/medsupply/internal/store"
)

// StockTakeHandler handles stock reconciliation endpoints.
type StockTakeHandler struct {
	Reg     *registry.Registry
	DB      *sql.DB
	persist *persister
}

type stockTakeRequest struct {
	TakenBy string                      `json:"taken_by"`
	Entries []model.StockChecklistEntry `json:"entries"`
}

type stockTakeResponse struct {
	AuditID       string                       `json:"audit_id,omitempty"`
	Discrepancies map[string]model.Discrepancy `json:"discrepancies"`
}

// Run handles POST /api/stocktake.
func (h *StockTakeHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req stockTakeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, e := range req.Entries {
		if e.ItemID == "" {
			jsonError(w, http.StatusBadRequest, "item_id required for every entry")
			return
		}
		if e.CountedQuantity < 0 {
			jsonError(w, http.StatusBadRequest, "counted_quantity must be non-negative")
			return
		}
	}

	discrepancies, err := h.Reg.RunStockTake(req.Entries)
	// Entries before a failing one have already been applied.
	h.persist.save(r.Context())
	if err != nil {
		registryError(w, err)
		return
	}

	takenBy := actor(r, req.TakenBy)
	resp := stockTakeResponse{Discrepancies: discrepancies}
	if h.DB != nil {
		audit, err := store.RecordStockTake(r.Context(), h.DB, takenBy, discrepancies)
		if err != nil {
			slog.Error("recording stock-take", "error", err)
			jsonError(w, http.StatusInternalServerError, "failed to record stock-take")
			return
		}
		resp.AuditID = audit.AuditID
	}

	slog.Info("stock-take completed", "entries", len(req.Entries), "discrepancies", len(discrepancies), "by", takenBy)
	jsonResponse(w, http.StatusOK, resp)
}

// List handles GET /api/stocktake.
func (h *StockTakeHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		jsonResponse(w, http.StatusOK, []model.StockTake{})
		return
	}

	takes, err := store.ListStockTakes(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list stock-takes")
		return
	}
	if takes == nil {
		takes = []model.StockTake{}
	}
	jsonResponse(w, http.StatusOK, takes)
}
