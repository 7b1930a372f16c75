package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/erazemk/medsupply/internal/model"
)

func TestStockTakeReconciles(t *testing.T) {
	reg := New()
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-3", Name: "Gloves", AssetType: model.AssetTypeConsumable, Quantity: 100})

	got, err := reg.RunStockTake([]model.StockChecklistEntry{{ItemID: "item-3", CountedQuantity: 92}})
	if err != nil {
		t.Fatalf("RunStockTake: %v", err)
	}

	want := map[string]model.Discrepancy{"item-3": {SystemQuantity: 100, CountedQuantity: 92}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	item, _ := reg.InventoryItem("item-3")
	if item.Quantity != 92 {
		t.Errorf("expected quantity 92, got %d", item.Quantity)
	}
}

func TestStockTakeMatchOmitted(t *testing.T) {
	reg := New()
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: model.AssetTypeConsumable, Quantity: 100})
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-2", Name: "IV Sets", AssetType: model.AssetTypeConsumable, Quantity: 20})

	got, err := reg.RunStockTake([]model.StockChecklistEntry{
		{ItemID: "item-1", CountedQuantity: 100},
		{ItemID: "item-2", CountedQuantity: 25},
	})
	if err != nil {
		t.Fatalf("RunStockTake: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 discrepancy, got %v", got)
	}
	if _, ok := got["item-1"]; ok {
		t.Error("expected matching item to be omitted")
	}

	item, _ := reg.InventoryItem("item-1")
	if item.Quantity != 100 {
		t.Errorf("expected quantity unchanged at 100, got %d", item.Quantity)
	}
}

func TestStockTakeLastCountWins(t *testing.T) {
	reg := New()
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: model.AssetTypeConsumable, Quantity: 100})

	got, _ := reg.RunStockTake([]model.StockChecklistEntry{
		{ItemID: "item-1", CountedQuantity: 90},
		{ItemID: "item-1", CountedQuantity: 80},
	})

	want := model.Discrepancy{SystemQuantity: 90, CountedQuantity: 80}
	if got["item-1"] != want {
		t.Errorf("expected %v, got %v", want, got["item-1"])
	}
}

func TestStockTakeUnknownItem(t *testing.T) {
	reg := New()
	reg.AddInventoryItem(&model.InventoryItem{ItemID: "item-1", Name: "Gloves", AssetType: model.AssetTypeConsumable, Quantity: 100})

	got, err := reg.RunStockTake([]model.StockChecklistEntry{
		{ItemID: "item-1", CountedQuantity: 95},
		{ItemID: "item-missing", CountedQuantity: 1},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no discrepancies on failure, got %v", got)
	}

	// Entries before the failing one stay applied.
	item, _ := reg.InventoryItem("item-1")
	if item.Quantity != 95 {
		t.Errorf("expected quantity 95, got %d", item.Quantity)
	}
}
