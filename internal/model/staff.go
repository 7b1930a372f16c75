package model

import (
	"errors"
	"fmt"
)

// StaffRole is the job a staff member performs.
type StaffRole string

// Staff roles.
const (
	StaffRoleParamedic        StaffRole = "Paramedic"
	StaffRoleDriver           StaffRole = "Driver"
	StaffRoleInventoryManager StaffRole = "Inventory Manager"
)

// Valid reports whether r is one of the known staff roles.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRoleParamedic, StaffRoleDriver, StaffRoleInventoryManager:
		return true
	}
	return false
}

// StaffMember is a crew member who can be rostered onto a shift and vehicle.
type StaffMember struct {
	StaffID           string    `json:"staff_id"`
	Name              string    `json:"name"`
	Role              StaffRole `json:"role"`
	AssignedShift     *string   `json:"assigned_shift,omitempty"`
	AssignedVehicleID *string   `json:"assigned_vehicle_id,omitempty"`
}

// Validate checks the fields a caller must supply.
func (s *StaffMember) Validate() error {
	var errs []error

	if s.StaffID == "" {
		errs = append(errs, errors.New("staff_id is required"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !s.Role.Valid() {
		errs = append(errs, fmt.Errorf("invalid role: %q", s.Role))
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the staff member.
func (s *StaffMember) Clone() *StaffMember {
	c := *s
	c.AssignedShift = cloneString(s.AssignedShift)
	c.AssignedVehicleID = cloneString(s.AssignedVehicleID)
	return &c
}
