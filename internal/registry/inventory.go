package registry

import "github.com/erazemk/medsupply/internal/model"

// AddInventoryItem stores item, replacing any item with the same id.
func (r *Registry) AddInventoryItem(item *model.InventoryItem) {
	c := item.Clone()
	if c.MaintenanceHistory == nil {
		c.MaintenanceHistory = []model.MaintenanceRecord{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ItemID] = c
}

// InventoryItem returns the item with the given id.
func (r *Registry) InventoryItem(itemID string) (*model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, notFound(CollectionInventory, itemID)
	}
	return item.Clone(), nil
}

// InventoryItems returns all items ordered by id.
func (r *Registry) InventoryItems() []*model.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSorted(r.items, (*model.InventoryItem).Clone)
}

// RecordMaintenance appends a service record to an item's history.
func (r *Registry) RecordMaintenance(itemID string, record model.MaintenanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return notFound(CollectionInventory, itemID)
	}
	item.MaintenanceHistory = append(item.MaintenanceHistory, record)
	return nil
}
