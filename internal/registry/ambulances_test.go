package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/erazemk/medsupply/internal/model"
)

func TestAmbulanceStatusAssignmentAndLevels(t *testing.T) {
	reg := New()

	reg.AddInventoryItem(&model.InventoryItem{
		ItemID:         "item-2",
		Name:           "Oxygen Kit",
		AssetType:      model.AssetTypeConsumable,
		Quantity:       5,
		ExpirationDate: datePtr(2026, 10, 1),
	})
	amb := model.NewAmbulanceVehicle("amb-1")
	amb.Status = model.VehicleStatusMaintenance
	reg.RegisterAmbulance(amb)

	if err := reg.AssignEquipmentToAmbulance("amb-1", "item-2"); err != nil {
		t.Fatalf("AssignEquipmentToAmbulance: %v", err)
	}
	if err := reg.UpdateAmbulanceLevels("amb-1", 72.5, 60.0); err != nil {
		t.Fatalf("UpdateAmbulanceLevels: %v", err)
	}

	got, _ := reg.Ambulance("amb-1")
	if got.Status != model.VehicleStatusMaintenance {
		t.Errorf("expected status Maintenance, got %q", got.Status)
	}
	if !reflect.DeepEqual(got.AssignedEquipmentItemIDs, []string{"item-2"}) {
		t.Errorf("expected equipment [item-2], got %v", got.AssignedEquipmentItemIDs)
	}
	if got.OxygenLevelPercent != 72.5 {
		t.Errorf("expected oxygen 72.5, got %v", got.OxygenLevelPercent)
	}
	if got.FuelLevelPercent != 60.0 {
		t.Errorf("expected fuel 60, got %v", got.FuelLevelPercent)
	}
}

func TestAssignEquipmentAllowsDuplicates(t *testing.T) {
	reg := New()
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Splint", AssetType: model.AssetTypeConsumable, Quantity: 4})
	reg.RegisterAmbulance(model.NewAmbulanceVehicle("amb-1"))

	for range 2 {
		if err := reg.AssignEquipmentToAmbulance("amb-1", "item-1"); err != nil {
			t.Fatalf("AssignEquipmentToAmbulance: %v", err)
		}
	}

	got, _ := reg.Ambulance("amb-1")
	if !reflect.DeepEqual(got.AssignedEquipmentItemIDs, []string{"item-1", "item-1"}) {
		t.Errorf("expected duplicated equipment, got %v", got.AssignedEquipmentItemIDs)
	}
}

func TestAssignEquipmentNotFound(t *testing.T) {
	reg := New()
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Splint", AssetType: model.AssetTypeConsumable, Quantity: 4})
	reg.RegisterAmbulance(model.NewAmbulanceVehicle("amb-1"))

	tests := []struct {
		vehicleID  string
		itemID     string
		collection string
	}{
		{"amb-missing", "item-1", CollectionVehicles},
		{"amb-1", "item-missing", CollectionInventory},
		{"amb-missing", "item-missing", CollectionVehicles},
	}

	for _, tt := range tests {
		err := reg.AssignEquipmentToAmbulance(tt.vehicleID, tt.itemID)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Assign(%q, %q): expected *NotFoundError, got %v", tt.vehicleID, tt.itemID, err)
			continue
		}
		if nf.Collection != tt.collection {
			t.Errorf("Assign(%q, %q): expected collection %q, got %q", tt.vehicleID, tt.itemID, tt.collection, nf.Collection)
		}
	}

	got, _ := reg.Ambulance("amb-1")
	if len(got.AssignedEquipmentItemIDs) != 0 {
		t.Errorf("expected no equipment after failed assignments, got %v", got.AssignedEquipmentItemIDs)
	}
}

func TestUpdateAmbulanceLevelsUnclamped(t *testing.T) {
	reg := New()
	reg.RegisterAmbulance(model.NewAmbulanceVehicle("amb-1"))

	if err := reg.UpdateAmbulanceLevels("amb-1", 140, -5); err != nil {
		t.Fatalf("UpdateAmbulanceLevels: %v", err)
	}
	got, _ := reg.Ambulance("amb-1")
	if got.OxygenLevelPercent != 140 || got.FuelLevelPercent != -5 {
		t.Errorf("expected levels stored as given, got oxygen %v fuel %v", got.OxygenLevelPercent, got.FuelLevelPercent)
	}

	if err := reg.UpdateAmbulanceLevels("missing", 50, 50); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegisterAmbulanceDefaultsStatus(t *testing.T) {
	reg := New()
	reg.RegisterAmbulance(&model.AmbulanceVehicle{VehicleID: "amb-1"})

	got, _ := reg.Ambulance("amb-1")
	if got.Status != model.VehicleStatusActive {
		t.Errorf("expected status Active, got %q", got.Status)
	}
}

func TestSetAmbulanceStatus(t *testing.T) {
	reg := New()
	reg.RegisterAmbulance(model.NewAmbulanceVehicle("amb-1"))

	if err := reg.SetAmbulanceStatus("amb-1", model.VehicleStatusDispatched); err != nil {
		t.Fatalf("SetAmbulanceStatus: %v", err)
	}
	got, _ := reg.Ambulance("amb-1")
	if got.Status != model.VehicleStatusDispatched {
		t.Errorf("expected status Dispatched, got %q", got.Status)
	}

	if err := reg.SetAmbulanceStatus("missing", model.VehicleStatusActive); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
