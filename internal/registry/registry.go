// Package registry holds the in-memory supply chain registry: inventory
// items, ambulances, staff members and approval requests, plus the
// operations that move them between states.
//
// Every value passed in is copied on the way in and every value returned is a
// copy, so callers never share state with the registry.
package registry

import (
	"sort"
	"sync"

	"github.com/erazemk/medsupply/internal/model"
)

// Registry is safe for concurrent use. A single lock guards all four
// collections so that reference checks and the mutation they guard happen
// atomically.
type Registry struct {
	mu       sync.RWMutex
	items    map[string]*model.InventoryItem
	vehicles map[string]*model.AmbulanceVehicle
	requests map[string]*model.ApprovalRequest
	staff    map[string]*model.StaffMember
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		items:    make(map[string]*model.InventoryItem),
		vehicles: make(map[string]*model.AmbulanceVehicle),
		requests: make(map[string]*model.ApprovalRequest),
		staff:    make(map[string]*model.StaffMember),
	}
}

// Stats returns the dashboard counters.
func (r *Registry) Stats() model.Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := model.Stats{
		TotalItems:    len(r.items),
		TotalVehicles: len(r.vehicles),
		TotalStaff:    len(r.staff),
	}
	for _, v := range r.vehicles {
		if v.Status == model.VehicleStatusActive {
			s.ActiveVehicles++
		}
	}
	for _, req := range r.requests {
		if req.Status == model.RequestStatusPending {
			s.PendingApprovals++
		}
	}
	return s
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// cloneSorted returns copies of the values of m ordered by key. The caller
// must hold r.mu.
func cloneSorted[V any](m map[string]V, clone func(V) V) []V {
	out := make([]V, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, clone(m[k]))
	}
	return out
}
