package model

import (
	"errors"
	"fmt"
)

// VehicleStatus is the operational state of an ambulance.
type VehicleStatus string

// Vehicle statuses.
const (
	VehicleStatusActive      VehicleStatus = "Active"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
	VehicleStatusDispatched  VehicleStatus = "Dispatched"
)

// Valid reports whether s is one of the known vehicle statuses.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusDispatched:
		return true
	}
	return false
}

// DefaultLevelPercent is the oxygen and fuel level of a newly registered vehicle.
const DefaultLevelPercent = 100.0

// AmbulanceVehicle is a fleet vehicle and the equipment loaded on it.
// AssignedEquipmentItemIDs references inventory item ids and may contain
// the same id more than once.
type AmbulanceVehicle struct {
	VehicleID                string        `json:"vehicle_id"`
	Status                   VehicleStatus `json:"status"`
	AssignedEquipmentItemIDs []string      `json:"assigned_equipment_item_ids"`
	OxygenLevelPercent       float64       `json:"oxygen_level_percent"`
	FuelLevelPercent         float64       `json:"fuel_level_percent"`
}

// NewAmbulanceVehicle returns an active vehicle with full oxygen and fuel.
func NewAmbulanceVehicle(vehicleID string) *AmbulanceVehicle {
	return &AmbulanceVehicle{
		VehicleID:                vehicleID,
		Status:                   VehicleStatusActive,
		AssignedEquipmentItemIDs: []string{},
		OxygenLevelPercent:       DefaultLevelPercent,
		FuelLevelPercent:         DefaultLevelPercent,
	}
}

// Validate checks the fields a caller must supply.
func (v *AmbulanceVehicle) Validate() error {
	var errs []error

	if v.VehicleID == "" {
		errs = append(errs, errors.New("vehicle_id is required"))
	}
	if !v.Status.Valid() {
		errs = append(errs, fmt.Errorf("invalid status: %q", v.Status))
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the vehicle.
func (v *AmbulanceVehicle) Clone() *AmbulanceVehicle {
	c := *v
	c.AssignedEquipmentItemIDs = append([]string{}, v.AssignedEquipmentItemIDs...)
	return &c
}
