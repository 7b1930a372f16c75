package model

import "time"

// StockChecklistEntry is one physically counted line of a stock-take.
type StockChecklistEntry struct {
	ItemID          string `json:"item_id"`
	CountedQuantity int    `json:"counted_quantity"`
}

// Discrepancy records a recorded quantity that disagreed with the count.
type Discrepancy struct {
	SystemQuantity  int `json:"system_quantity"`
	CountedQuantity int `json:"counted_quantity"`
}

// StockTake is a completed stock-take kept for audit.
type StockTake struct {
	AuditID       string                 `json:"audit_id"`
	TakenBy       string                 `json:"taken_by,omitempty"`
	TakenAt       time.Time              `json:"taken_at"`
	Discrepancies map[string]Discrepancy `json:"discrepancies"`
}

// Stats are the dashboard counters.
type Stats struct {
	TotalItems       int `json:"total_items"`
	TotalVehicles    int `json:"total_vehicles"`
	ActiveVehicles   int `json:"active_vehicles"`
	PendingApprovals int `json:"pending_approvals"`
	TotalStaff       int `json:"total_staff"`
}
