// Package seed loads a small demo fleet into an empty registry.
package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/erazemk/medsupply/internal/model"
	"github.com/erazemk/medsupply/internal/registry"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func str(s string) *string { return &s }

var items = []model.InventoryItem{
	{ItemID: "EQ-001", Name: "Defibrillator AED Pro", AssetType: model.AssetTypeMedicalDevice, Quantity: 1, SerialNumber: str("SN-001")},
	{ItemID: "EQ-002", Name: "Oxygen Concentrator", AssetType: model.AssetTypeMedicalDevice, Quantity: 1, SerialNumber: str("SN-002")},
	{ItemID: "EQ-003", Name: "Surgical Gloves (L)", AssetType: model.AssetTypeConsumable, Quantity: 500, ExpirationDate: date(2025, time.December, 31)},
	{ItemID: "EQ-004", Name: "IV Drip Sets", AssetType: model.AssetTypeConsumable, Quantity: 200},
	{ItemID: "EQ-005", Name: "Stretcher Premium", AssetType: model.AssetTypeFixedAsset, Quantity: 1, SerialNumber: str("SN-003")},
	{ItemID: "EQ-006", Name: "Ventilator Model X", AssetType: model.AssetTypeMedicalDevice, Quantity: 1, SerialNumber: str("SN-004"), CalibrationDueDate: date(2025, time.June, 1)},
	{ItemID: "EQ-007", Name: "Blood Pressure Monitor", AssetType: model.AssetTypeMedicalDevice, Quantity: 1, SerialNumber: str("SN-005")},
	{ItemID: "EQ-008", Name: "Pulse Oximeter", AssetType: model.AssetTypeMedicalDevice, Quantity: 1, SerialNumber: str("SN-006")},
	{ItemID: "EQ-009", Name: "Wheelchair Standard", AssetType: model.AssetTypeFixedAsset, Quantity: 3, SerialNumber: str("SN-007")},
	{ItemID: "EQ-010", Name: "Morphine 10mg", AssetType: model.AssetTypeConsumable, Quantity: 100, ExpirationDate: date(2026, time.December, 31)},
}

var vehicles = []model.AmbulanceVehicle{
	{VehicleID: "AMB-001", Status: model.VehicleStatusActive, OxygenLevelPercent: 80, FuelLevelPercent: 75},
	{VehicleID: "AMB-002", Status: model.VehicleStatusDispatched, OxygenLevelPercent: 60, FuelLevelPercent: 50},
	{VehicleID: "AMB-003", Status: model.VehicleStatusMaintenance, OxygenLevelPercent: 30, FuelLevelPercent: 90},
	{VehicleID: "AMB-004", Status: model.VehicleStatusActive, OxygenLevelPercent: 95, FuelLevelPercent: 85},
}

// equipment lists vehicle/item pairs in assignment order.
var equipment = [][2]string{
	{"AMB-001", "EQ-001"},
	{"AMB-001", "EQ-005"},
	{"AMB-001", "EQ-008"},
	{"AMB-002", "EQ-001"},
	{"AMB-002", "EQ-002"},
}

var staff = []model.StaffMember{
	{StaffID: "STF-001", Name: "John Smith", Role: model.StaffRoleParamedic},
	{StaffID: "STF-002", Name: "Jane Doe", Role: model.StaffRoleDriver},
	{StaffID: "STF-003", Name: "Bob Johnson", Role: model.StaffRoleInventoryManager},
	{StaffID: "STF-005", Name: "Mike Wilson", Role: model.StaffRoleParamedic},
}

type assignment struct {
	staffID   string
	shift     string
	vehicleID string
}

var assignments = []assignment{
	{"STF-001", "Day", "AMB-001"},
	{"STF-002", "Day", "AMB-001"},
	{"STF-005", "Night", "AMB-002"},
}

// request is a demo approval request and how far to drive it.
type request struct {
	model.ApprovalRequest
	approver  string
	fulfiller string
}

var requests = []request{
	{ApprovalRequest: model.ApprovalRequest{RequestID: "REQ-001", RequestType: "Procurement", RequestedBy: "STF-003"}},
	{ApprovalRequest: model.ApprovalRequest{RequestID: "REQ-002", RequestType: "Dispatch", RequestedBy: "STF-001"}, approver: "STF-005"},
	{ApprovalRequest: model.ApprovalRequest{RequestID: "REQ-003", RequestType: "Procurement", RequestedBy: "STF-003"}, approver: "STF-005", fulfiller: "STF-003"},
	{ApprovalRequest: model.ApprovalRequest{RequestID: "REQ-004", RequestType: "Dispatch", RequestedBy: "STF-005"}},
}

// Load fills reg with the demo fleet. It does nothing and reports false when
// the registry already holds data.
func Load(reg *registry.Registry) (bool, error) {
	if reg.Stats() != (model.Stats{}) {
		return false, nil
	}

	for i := range items {
		reg.AddInventoryItem(&items[i])
	}
	for i := range vehicles {
		reg.RegisterAmbulance(&vehicles[i])
	}
	for _, e := range equipment {
		if err := reg.AssignEquipmentToAmbulance(e[0], e[1]); err != nil {
			return false, fmt.Errorf("assigning %s to %s: %w", e[1], e[0], err)
		}
	}

	for i := range staff {
		reg.AddStaffMember(&staff[i])
	}
	for _, a := range assignments {
		if err := reg.AssignStaff(a.staffID, a.shift, &a.vehicleID); err != nil {
			return false, fmt.Errorf("assigning %s: %w", a.staffID, err)
		}
	}

	for i := range requests {
		r := &requests[i]
		reg.CreateApprovalRequest(&r.ApprovalRequest)
		if r.approver != "" {
			if err := reg.ClinicallyApproveRequest(r.RequestID, r.approver); err != nil {
				return false, fmt.Errorf("approving %s: %w", r.RequestID, err)
			}
		}
		if r.fulfiller != "" {
			if err := reg.FulfillRequest(r.RequestID, r.fulfiller); err != nil {
				return false, fmt.Errorf("fulfilling %s: %w", r.RequestID, err)
			}
		}
	}

	slog.Info("seeded demo data",
		"items", len(items),
		"vehicles", len(vehicles),
		"staff", len(staff),
		"requests", len(requests),
	)
	return true, nil
}
