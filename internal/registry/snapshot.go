package registry

import "github.com/erazemk/medsupply/internal/model"

// Snapshot is a point-in-time copy of every collection, ordered by id.
type Snapshot struct {
	Items    []*model.InventoryItem
	Vehicles []*model.AmbulanceVehicle
	Requests []*model.ApprovalRequest
	Staff    []*model.StaffMember
}

// Snapshot copies the registry's current state under a single read lock, so
// every reference in the result names an entity that is also in it.
func (r *Registry) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Snapshot{
		Items:    cloneSorted(r.items, (*model.InventoryItem).Clone),
		Vehicles: cloneSorted(r.vehicles, (*model.AmbulanceVehicle).Clone),
		Requests: cloneSorted(r.requests, (*model.ApprovalRequest).Clone),
		Staff:    cloneSorted(r.staff, (*model.StaffMember).Clone),
	}
}

// Restore replaces the registry's state with snap. Approval requests keep
// their stored status and sign-offs.
func (r *Registry) Restore(snap *Snapshot) {
	items := make(map[string]*model.InventoryItem, len(snap.Items))
	for _, it := range snap.Items {
		c := it.Clone()
		if c.MaintenanceHistory == nil {
			c.MaintenanceHistory = []model.MaintenanceRecord{}
		}
		items[c.ItemID] = c
	}
	vehicles := make(map[string]*model.AmbulanceVehicle, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		vehicles[v.VehicleID] = v.Clone()
	}
	requests := make(map[string]*model.ApprovalRequest, len(snap.Requests))
	for _, req := range snap.Requests {
		requests[req.RequestID] = req.Clone()
	}
	staff := make(map[string]*model.StaffMember, len(snap.Staff))
	for _, s := range snap.Staff {
		staff[s.StaffID] = s.Clone()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	r.vehicles = vehicles
	r.requests = requests
	r.staff = staff
}
