package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/medsupply/internal/model"
	"github.com/erazemk/medsupply/internal/registry"
)

// SaveSnapshot replaces the stored registry state with snap in a single
// transaction.
func SaveSnapshot(ctx context.Context, db *sql.DB, snap *registry.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Children before parents so foreign keys hold throughout.
	for _, table := range []string{"staff", "vehicle_equipment", "vehicles", "maintenance_records", "items", "approval_requests"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, item := range snap.Items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (item_id, name, asset_type, quantity, serial_number, expiration_date, calibration_due_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ItemID, item.Name, string(item.AssetType), item.Quantity,
			item.SerialNumber, item.ExpirationDate, item.CalibrationDueDate,
		)
		if err != nil {
			return fmt.Errorf("saving item %s: %w", item.ItemID, err)
		}
		for seq, rec := range item.MaintenanceHistory {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO maintenance_records (item_id, seq, service_date, notes) VALUES (?, ?, ?, ?)`,
				item.ItemID, seq, rec.ServiceDate, rec.Notes,
			)
			if err != nil {
				return fmt.Errorf("saving maintenance record for %s: %w", item.ItemID, err)
			}
		}
	}

	for _, v := range snap.Vehicles {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO vehicles (vehicle_id, status, oxygen_level, fuel_level) VALUES (?, ?, ?, ?)`,
			v.VehicleID, string(v.Status), v.OxygenLevelPercent, v.FuelLevelPercent,
		)
		if err != nil {
			return fmt.Errorf("saving vehicle %s: %w", v.VehicleID, err)
		}
		for seq, itemID := range v.AssignedEquipmentItemIDs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO vehicle_equipment (vehicle_id, seq, item_id) VALUES (?, ?, ?)`,
				v.VehicleID, seq, itemID,
			)
			if err != nil {
				return fmt.Errorf("saving equipment for %s: %w", v.VehicleID, err)
			}
		}
	}

	for _, req := range snap.Requests {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO approval_requests (request_id, request_type, requested_by, status, clinically_approved_by, fulfilled_by)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			req.RequestID, req.RequestType, req.RequestedBy, string(req.Status),
			req.ClinicallyApprovedBy, req.FulfilledBy,
		)
		if err != nil {
			return fmt.Errorf("saving approval request %s: %w", req.RequestID, err)
		}
	}

	for _, s := range snap.Staff {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO staff (staff_id, name, role, assigned_shift, assigned_vehicle_id) VALUES (?, ?, ?, ?, ?)`,
			s.StaffID, s.Name, string(s.Role), s.AssignedShift, s.AssignedVehicleID,
		)
		if err != nil {
			return fmt.Errorf("saving staff member %s: %w", s.StaffID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the stored registry state. An empty database yields an
// empty snapshot.
func LoadSnapshot(ctx context.Context, db *sql.DB) (*registry.Snapshot, error) {
	snap := &registry.Snapshot{}
	var err error

	if snap.Items, err = loadItems(ctx, db); err != nil {
		return nil, err
	}
	if snap.Vehicles, err = loadVehicles(ctx, db); err != nil {
		return nil, err
	}
	if snap.Requests, err = loadRequests(ctx, db); err != nil {
		return nil, err
	}
	if snap.Staff, err = loadStaff(ctx, db); err != nil {
		return nil, err
	}
	return snap, nil
}

func loadItems(ctx context.Context, db *sql.DB) ([]*model.InventoryItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT item_id, name, asset_type, quantity, serial_number, expiration_date, calibration_due_date
		 FROM items ORDER BY item_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*model.InventoryItem
	byID := make(map[string]*model.InventoryItem)
	for rows.Next() {
		item := &model.InventoryItem{MaintenanceHistory: []model.MaintenanceRecord{}}
		var serial sql.NullString
		if err := rows.Scan(&item.ItemID, &item.Name, &item.AssetType, &item.Quantity,
			&serial, &item.ExpirationDate, &item.CalibrationDueDate); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if serial.Valid {
			item.SerialNumber = &serial.String
		}
		items = append(items, item)
		byID[item.ItemID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recs, err := db.QueryContext(ctx,
		`SELECT item_id, service_date, notes FROM maintenance_records ORDER BY item_id, seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance records: %w", err)
	}
	defer recs.Close()

	for recs.Next() {
		var itemID string
		var rec model.MaintenanceRecord
		if err := recs.Scan(&itemID, &rec.ServiceDate, &rec.Notes); err != nil {
			return nil, fmt.Errorf("scanning maintenance record: %w", err)
		}
		if item, ok := byID[itemID]; ok {
			item.MaintenanceHistory = append(item.MaintenanceHistory, rec)
		}
	}
	return items, recs.Err()
}

func loadVehicles(ctx context.Context, db *sql.DB) ([]*model.AmbulanceVehicle, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT vehicle_id, status, oxygen_level, fuel_level FROM vehicles ORDER BY vehicle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*model.AmbulanceVehicle
	byID := make(map[string]*model.AmbulanceVehicle)
	for rows.Next() {
		v := &model.AmbulanceVehicle{AssignedEquipmentItemIDs: []string{}}
		if err := rows.Scan(&v.VehicleID, &v.Status, &v.OxygenLevelPercent, &v.FuelLevelPercent); err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
		byID[v.VehicleID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	eq, err := db.QueryContext(ctx,
		`SELECT vehicle_id, item_id FROM vehicle_equipment ORDER BY vehicle_id, seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing vehicle equipment: %w", err)
	}
	defer eq.Close()

	for eq.Next() {
		var vehicleID, itemID string
		if err := eq.Scan(&vehicleID, &itemID); err != nil {
			return nil, fmt.Errorf("scanning vehicle equipment: %w", err)
		}
		if v, ok := byID[vehicleID]; ok {
			v.AssignedEquipmentItemIDs = append(v.AssignedEquipmentItemIDs, itemID)
		}
	}
	return vehicles, eq.Err()
}

func loadRequests(ctx context.Context, db *sql.DB) ([]*model.ApprovalRequest, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT request_id, request_type, requested_by, status, clinically_approved_by, fulfilled_by
		 FROM approval_requests ORDER BY request_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing approval requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.ApprovalRequest
	for rows.Next() {
		req := &model.ApprovalRequest{}
		var approvedBy, fulfilledBy sql.NullString
		if err := rows.Scan(&req.RequestID, &req.RequestType, &req.RequestedBy, &req.Status,
			&approvedBy, &fulfilledBy); err != nil {
			return nil, fmt.Errorf("scanning approval request: %w", err)
		}
		req.ClinicallyApprovedBy = nullString(approvedBy)
		req.FulfilledBy = nullString(fulfilledBy)
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func loadStaff(ctx context.Context, db *sql.DB) ([]*model.StaffMember, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT staff_id, name, role, assigned_shift, assigned_vehicle_id FROM staff ORDER BY staff_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var staff []*model.StaffMember
	for rows.Next() {
		s := &model.StaffMember{}
		var shift, vehicleID sql.NullString
		if err := rows.Scan(&s.StaffID, &s.Name, &s.Role, &shift, &vehicleID); err != nil {
			return nil, fmt.Errorf("scanning staff member: %w", err)
		}
		s.AssignedShift = nullString(shift)
		s.AssignedVehicleID = nullString(vehicleID)
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
