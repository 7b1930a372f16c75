package model

import (
	"testing"
	"time"
)

func TestEnumValid(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		want  bool
	}{
		{"medical device", AssetTypeMedicalDevice.Valid(), true},
		{"consumable", AssetTypeConsumable.Valid(), true},
		{"fixed asset", AssetTypeFixedAsset.Valid(), true},
		{"unknown asset", AssetType("device").Valid(), false},
		{"active", VehicleStatusActive.Valid(), true},
		{"dispatched", VehicleStatusDispatched.Valid(), true},
		{"unknown vehicle status", VehicleStatus("Parked").Valid(), false},
		{"pending", RequestStatusPending.Valid(), true},
		{"fulfilled", RequestStatusFulfilled.Valid(), true},
		{"rejected", RequestStatus("Rejected").Valid(), false},
		{"driver", StaffRoleDriver.Valid(), true},
		{"inventory manager", StaffRoleInventoryManager.Valid(), true},
		{"admin", StaffRole("Admin").Valid(), false},
		{"empty", StaffRole("").Valid(), false},
	}

	for _, tt := range tests {
		if tt.valid != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, tt.valid, tt.want)
		}
	}
}

func TestInventoryItemValidate(t *testing.T) {
	tests := []struct {
		item    InventoryItem
		wantErr bool
	}{
		{InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: AssetTypeConsumable, Quantity: 10}, false},
		{InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: AssetTypeConsumable}, false},
		{InventoryItem{Name: "Gloves", AssetType: AssetTypeConsumable}, true},
		{InventoryItem{ItemID: "item-1", AssetType: AssetTypeConsumable}, true},
		{InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: "box"}, true},
		{InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: AssetTypeConsumable, Quantity: -1}, true},
	}

	for _, tt := range tests {
		err := tt.item.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.item, err, tt.wantErr)
		}
	}
}

func TestOtherValidate(t *testing.T) {
	if err := NewAmbulanceVehicle("amb-1").Validate(); err != nil {
		t.Errorf("new vehicle: %v", err)
	}
	if err := (&AmbulanceVehicle{VehicleID: "amb-1"}).Validate(); err == nil {
		t.Error("expected error for empty vehicle status")
	}
	if err := (&ApprovalRequest{RequestID: "req-1", RequestType: "Procurement"}).Validate(); err == nil {
		t.Error("expected error for missing requested_by")
	}
	if err := (&StaffMember{StaffID: "staff-1", Name: "Alex", Role: StaffRoleDriver}).Validate(); err != nil {
		t.Errorf("staff: %v", err)
	}
	if err := (&StaffMember{StaffID: "staff-1", Name: "Alex", Role: "Admin"}).Validate(); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestNewAmbulanceVehicleDefaults(t *testing.T) {
	v := NewAmbulanceVehicle("amb-1")
	if v.Status != VehicleStatusActive {
		t.Errorf("expected status Active, got %q", v.Status)
	}
	if v.OxygenLevelPercent != 100.0 || v.FuelLevelPercent != 100.0 {
		t.Errorf("expected full levels, got oxygen %v fuel %v", v.OxygenLevelPercent, v.FuelLevelPercent)
	}
	if len(v.AssignedEquipmentItemIDs) != 0 {
		t.Errorf("expected no equipment, got %v", v.AssignedEquipmentItemIDs)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	serial := "SN-1001"
	due := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	item := &InventoryItem{
		ItemID:             "item-1",
		Name:               "Defibrillator",
		AssetType:          AssetTypeMedicalDevice,
		Quantity:           1,
		SerialNumber:       &serial,
		MaintenanceHistory: []MaintenanceRecord{{ServiceDate: due, Notes: "Inspected"}},
		CalibrationDueDate: &due,
	}

	c := item.Clone()
	*c.SerialNumber = "changed"
	c.MaintenanceHistory[0].Notes = "changed"
	*c.CalibrationDueDate = due.AddDate(1, 0, 0)

	if *item.SerialNumber != "SN-1001" {
		t.Errorf("serial number leaked through clone: %q", *item.SerialNumber)
	}
	if item.MaintenanceHistory[0].Notes != "Inspected" {
		t.Errorf("maintenance history leaked through clone: %q", item.MaintenanceHistory[0].Notes)
	}
	if !item.CalibrationDueDate.Equal(due) {
		t.Errorf("calibration date leaked through clone: %v", item.CalibrationDueDate)
	}

	v := NewAmbulanceVehicle("amb-1")
	vc := v.Clone()
	vc.AssignedEquipmentItemIDs = append(vc.AssignedEquipmentItemIDs, "item-1")
	if len(v.AssignedEquipmentItemIDs) != 0 {
		t.Errorf("equipment leaked through clone: %v", v.AssignedEquipmentItemIDs)
	}
}
