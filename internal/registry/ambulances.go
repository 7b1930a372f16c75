package registry

import "github.com/erazemk/medsupply/internal/model"

// RegisterAmbulance stores vehicle, replacing any vehicle with the same id.
// An empty status is stored as Active.
func (r *Registry) RegisterAmbulance(vehicle *model.AmbulanceVehicle) {
	c := vehicle.Clone()
	if c.Status == "" {
		c.Status = model.VehicleStatusActive
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[c.VehicleID] = c
}

// Ambulance returns the vehicle with the given id.
func (r *Registry) Ambulance(vehicleID string) (*model.AmbulanceVehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[vehicleID]
	if !ok {
		return nil, notFound(CollectionVehicles, vehicleID)
	}
	return v.Clone(), nil
}

// Ambulances returns all vehicles ordered by id.
func (r *Registry) Ambulances() []*model.AmbulanceVehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSorted(r.vehicles, (*model.AmbulanceVehicle).Clone)
}

// AssignEquipmentToAmbulance appends itemID to the vehicle's equipment list.
// Repeated calls append the id again.
func (r *Registry) AssignEquipmentToAmbulance(vehicleID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[vehicleID]
	if !ok {
		return notFound(CollectionVehicles, vehicleID)
	}
	if _, ok := r.items[itemID]; !ok {
		return notFound(CollectionInventory, itemID)
	}
	v.AssignedEquipmentItemIDs = append(v.AssignedEquipmentItemIDs, itemID)
	return nil
}

// UpdateAmbulanceLevels overwrites the vehicle's oxygen and fuel levels.
// Values are stored as given, without clamping.
func (r *Registry) UpdateAmbulanceLevels(vehicleID string, oxygenPercent, fuelPercent float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[vehicleID]
	if !ok {
		return notFound(CollectionVehicles, vehicleID)
	}
	v.OxygenLevelPercent = oxygenPercent
	v.FuelLevelPercent = fuelPercent
	return nil
}

// SetAmbulanceStatus changes the vehicle's operational status.
func (r *Registry) SetAmbulanceStatus(vehicleID string, status model.VehicleStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[vehicleID]
	if !ok {
		return notFound(CollectionVehicles, vehicleID)
	}
	v.Status = status
	return nil
}
