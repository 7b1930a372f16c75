package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/medsupply/internal/registry"
)

// NewRouter creates the API router with all endpoints registered.
// database may be nil, in which case nothing is persisted and stock-take
// history is not kept.
func NewRouter(reg *registry.Registry, database *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	p := &persister{Reg: reg, DB: database}

	authHandler := &AuthHandler{Reg: reg, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Reg: reg, persist: p}
	vehiclesHandler := &VehiclesHandler{Reg: reg, persist: p}
	approvalsHandler := &ApprovalsHandler{Reg: reg, persist: p}
	staffHandler := &StaffHandler{Reg: reg, persist: p}
	stockTakeHandler := &StockTakeHandler{Reg: reg, DB: database, persist: p}
	dashboardHandler := &DashboardHandler{Reg: reg}

	// Actor tokens.
	mux.HandleFunc("POST /api/auth/token", authHandler.Token)

	// Inventory.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("POST /api/items/{id}/maintenance", itemsHandler.AddMaintenance)

	// Fleet.
	mux.HandleFunc("GET /api/vehicles", vehiclesHandler.List)
	mux.HandleFunc("POST /api/vehicles", vehiclesHandler.Create)
	mux.HandleFunc("GET /api/vehicles/{id}", vehiclesHandler.Get)
	mux.HandleFunc("POST /api/vehicles/{id}/equipment", vehiclesHandler.AssignEquipment)
	mux.HandleFunc("PUT /api/vehicles/{id}/levels", vehiclesHandler.UpdateLevels)
	mux.HandleFunc("PUT /api/vehicles/{id}/status", vehiclesHandler.SetStatus)

	// Approval workflow.
	mux.HandleFunc("GET /api/approvals", approvalsHandler.List)
	mux.HandleFunc("POST /api/approvals", approvalsHandler.Create)
	mux.HandleFunc("GET /api/approvals/{id}", approvalsHandler.Get)
	mux.HandleFunc("POST /api/approvals/{id}/approve", approvalsHandler.Approve)
	mux.HandleFunc("POST /api/approvals/{id}/fulfill", approvalsHandler.Fulfill)

	// Staff.
	mux.HandleFunc("GET /api/staff", staffHandler.List)
	mux.HandleFunc("POST /api/staff", staffHandler.Create)
	mux.HandleFunc("GET /api/staff/{id}", staffHandler.Get)
	mux.HandleFunc("PUT /api/staff/{id}/assignment", staffHandler.Assign)

	// Stock reconciliation.
	mux.HandleFunc("POST /api/stocktake", stockTakeHandler.Run)
	mux.HandleFunc("GET /api/stocktake", stockTakeHandler.List)

	mux.HandleFunc("GET /api/dashboard", dashboardHandler.Get)

	return IdentifyMiddleware(jwtSecret)(mux)
}
