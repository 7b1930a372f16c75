package registry

import "github.com/erazemk/medsupply/internal/model"

// RunStockTake reconciles recorded quantities against a physical count.
// Entries are applied in order: a mismatch is recorded as a discrepancy and
// the stored quantity is overwritten with the counted one. The returned map
// holds only the items that disagreed.
//
// An unknown item id fails the call with a NotFoundError. Entries before the
// failing one stay applied.
func (r *Registry) RunStockTake(entries []model.StockChecklistEntry) (map[string]model.Discrepancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	discrepancies := make(map[string]model.Discrepancy)
	for _, e := range entries {
		item, ok := r.items[e.ItemID]
		if !ok {
			return nil, notFound(CollectionInventory, e.ItemID)
		}
		if item.Quantity != e.CountedQuantity {
			discrepancies[e.ItemID] = model.Discrepancy{
				SystemQuantity:  item.Quantity,
				CountedQuantity: e.CountedQuantity,
			}
			item.Quantity = e.CountedQuantity
		}
	}
	return discrepancies, nil
}
