package registry

import "github.com/erazemk/medsupply/internal/model"

// AddStaffMember stores staff, replacing any member with the same id.
func (r *Registry) AddStaffMember(staff *model.StaffMember) {
	c := staff.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.staff[c.StaffID] = c
}

// StaffMember returns the staff member with the given id.
func (r *Registry) StaffMember(staffID string) (*model.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.staff[staffID]
	if !ok {
		return nil, notFound(CollectionStaff, staffID)
	}
	return s.Clone(), nil
}

// StaffMembers returns all staff members ordered by id.
func (r *Registry) StaffMembers() []*model.StaffMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSorted(r.staff, (*model.StaffMember).Clone)
}

// AssignStaff sets a staff member's shift and vehicle. A nil vehicleID
// clears any existing vehicle assignment. On error nothing is changed.
func (r *Registry) AssignStaff(staffID, shift string, vehicleID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.staff[staffID]
	if !ok {
		return notFound(CollectionStaff, staffID)
	}
	if vehicleID != nil {
		if _, ok := r.vehicles[*vehicleID]; !ok {
			return notFound(CollectionVehicles, *vehicleID)
		}
	}

	s.AssignedShift = &shift
	if vehicleID != nil {
		id := *vehicleID
		s.AssignedVehicleID = &id
	} else {
		s.AssignedVehicleID = nil
	}
	return nil
}
