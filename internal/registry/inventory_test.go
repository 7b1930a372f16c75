package registry

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/erazemk/medsupply/internal/model"
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAddAndGetInventoryItem(t *testing.T) {
	reg := New()

	item := &model.InventoryItem{
		ItemID:       "item-1",
		Name:         "Defibrillator",
		AssetType:    model.AssetTypeMedicalDevice,
		Quantity:     1,
		SerialNumber: strPtr("SN-1001"),
		MaintenanceHistory: []model.MaintenanceRecord{
			{ServiceDate: *datePtr(2026, 1, 1), Notes: "Inspected"},
		},
		CalibrationDueDate: datePtr(2026, 12, 31),
	}
	reg.AddInventoryItem(item)

	got, err := reg.InventoryItem("item-1")
	if err != nil {
		t.Fatalf("InventoryItem: %v", err)
	}
	if !reflect.DeepEqual(got, item) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, item)
	}
	if *got.SerialNumber != "SN-1001" {
		t.Errorf("expected serial 'SN-1001', got %q", *got.SerialNumber)
	}
	if len(got.MaintenanceHistory) != 1 {
		t.Errorf("expected 1 maintenance record, got %d", len(got.MaintenanceHistory))
	}
}

func TestAddInventoryItemOverwrites(t *testing.T) {
	reg := New()

	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: model.AssetTypeConsumable, Quantity: 10})
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Gloves (L)", AssetType: model.AssetTypeConsumable, Quantity: 20})

	got, _ := reg.InventoryItem("item-1")
	if got.Name != "Gloves (L)" || got.Quantity != 20 {
		t.Errorf("expected overwritten item, got %+v", got)
	}
	if len(reg.InventoryItems()) != 1 {
		t.Errorf("expected 1 item, got %d", len(reg.InventoryItems()))
	}
}

func TestInventoryItemIsCopied(t *testing.T) {
	reg := New()

	item := &model.InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: model.AssetTypeConsumable, Quantity: 10}
	reg.AddInventoryItem(item)
	item.Quantity = 99

	got, _ := reg.InventoryItem("item-1")
	if got.Quantity != 10 {
		t.Errorf("expected stored quantity 10, got %d", got.Quantity)
	}

	got.Quantity = 50
	again, _ := reg.InventoryItem("item-1")
	if again.Quantity != 10 {
		t.Errorf("expected stored quantity 10 after mutating copy, got %d", again.Quantity)
	}
}

func TestInventoryItemNotFound(t *testing.T) {
	reg := New()

	_, err := reg.InventoryItem("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.Collection != CollectionInventory || nf.ID != "missing" {
		t.Errorf("unexpected error fields: %+v", nf)
	}
}

func TestInventoryItemsSorted(t *testing.T) {
	reg := New()

	for _, id := range []string{"item-3", "item-1", "item-2"} {
		reg.AddInventoryItem(&model.InventoryItem{ItemID: id, Name: id, AssetType: model.AssetTypeConsumable})
	}

	items := reg.InventoryItems()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"item-1", "item-2", "item-3"} {
		if items[i].ItemID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, items[i].ItemID)
		}
	}
}

func TestRecordMaintenance(t *testing.T) {
	reg := New()
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Ventilator", AssetType: model.AssetTypeMedicalDevice, Quantity: 1})

	first := model.MaintenanceRecord{ServiceDate: *datePtr(2026, 2, 1), Notes: "Filter replaced"}
	second := model.MaintenanceRecord{ServiceDate: *datePtr(2026, 3, 1)}
	if err := reg.RecordMaintenance("item-1", first); err != nil {
		t.Fatalf("RecordMaintenance: %v", err)
	}
	if err := reg.RecordMaintenance("item-1", second); err != nil {
		t.Fatalf("RecordMaintenance: %v", err)
	}

	got, _ := reg.InventoryItem("item-1")
	if !reflect.DeepEqual(got.MaintenanceHistory, []model.MaintenanceRecord{first, second}) {
		t.Errorf("unexpected history: %+v", got.MaintenanceHistory)
	}

	if err := reg.RecordMaintenance("missing", first); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
