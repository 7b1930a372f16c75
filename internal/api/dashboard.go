package api

import (
	"net/http"

	"github.com/erazemk/medsupply/internal/registry"
)

// DashboardHandler serves the summary counters.
type DashboardHandler struct {
	Reg *registry.Registry
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Reg.Stats())
}
