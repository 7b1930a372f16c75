package model

import (
	"errors"
	"fmt"
	"time"
)

// AssetType classifies an inventory item.
type AssetType string

// Asset types.
const (
	AssetTypeMedicalDevice AssetType = "Medical Device"
	AssetTypeConsumable    AssetType = "Consumable"
	AssetTypeFixedAsset    AssetType = "Fixed Asset"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeMedicalDevice, AssetTypeConsumable, AssetTypeFixedAsset:
		return true
	}
	return false
}

// MaintenanceRecord is a single service entry in an item's history.
type MaintenanceRecord struct {
	ServiceDate time.Time `json:"service_date"`
	Notes       string    `json:"notes"`
}

// InventoryItem is a stocked device, consumable or fixed asset.
type InventoryItem struct {
	ItemID             string              `json:"item_id"`
	Name               string              `json:"name"`
	AssetType          AssetType           `json:"asset_type"`
	Quantity           int                 `json:"quantity"`
	SerialNumber       *string             `json:"serial_number,omitempty"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenance_history"`
	ExpirationDate     *time.Time          `json:"expiration_date,omitempty"`
	CalibrationDueDate *time.Time          `json:"calibration_due_date,omitempty"`
}

// Validate checks the fields a caller must supply.
func (i *InventoryItem) Validate() error {
	var errs []error

	if i.ItemID == "" {
		errs = append(errs, errors.New("item_id is required"))
	}
	if i.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !i.AssetType.Valid() {
		errs = append(errs, fmt.Errorf("invalid asset_type: %q", i.AssetType))
	}
	if i.Quantity < 0 {
		errs = append(errs, errors.New("quantity must be non-negative"))
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of the item.
func (i *InventoryItem) Clone() *InventoryItem {
	c := *i
	c.SerialNumber = cloneString(i.SerialNumber)
	c.ExpirationDate = cloneTime(i.ExpirationDate)
	c.CalibrationDueDate = cloneTime(i.CalibrationDueDate)
	if i.MaintenanceHistory != nil {
		c.MaintenanceHistory = append([]MaintenanceRecord{}, i.MaintenanceHistory...)
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
