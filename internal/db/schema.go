package db

import (
	"database/sql"
	"fmt"
)

// schema holds the registry snapshot tables plus stock-take history.
// Sequence columns keep maintenance and equipment lists in insertion order.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    item_id              TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    asset_type           TEXT NOT NULL CHECK (asset_type IN ('Medical Device', 'Consumable', 'Fixed Asset')),
    quantity             INTEGER NOT NULL DEFAULT 0,
    serial_number        TEXT,
    expiration_date      DATETIME,
    calibration_due_date DATETIME
);

CREATE TABLE IF NOT EXISTS maintenance_records (
    item_id      TEXT NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
    seq          INTEGER NOT NULL,
    service_date DATETIME NOT NULL,
    notes        TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (item_id, seq)
);

CREATE TABLE IF NOT EXISTS vehicles (
    vehicle_id   TEXT PRIMARY KEY,
    status       TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Maintenance', 'Dispatched')),
    oxygen_level REAL NOT NULL DEFAULT 100,
    fuel_level   REAL NOT NULL DEFAULT 100
);

CREATE TABLE IF NOT EXISTS vehicle_equipment (
    vehicle_id TEXT NOT NULL REFERENCES vehicles(vehicle_id) ON DELETE CASCADE,
    seq        INTEGER NOT NULL,
    item_id    TEXT NOT NULL REFERENCES items(item_id),
    PRIMARY KEY (vehicle_id, seq)
);

CREATE TABLE IF NOT EXISTS approval_requests (
    request_id             TEXT PRIMARY KEY,
    request_type           TEXT NOT NULL,
    requested_by           TEXT NOT NULL,
    status                 TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Clinically Approved', 'Fulfilled')),
    clinically_approved_by TEXT,
    fulfilled_by           TEXT
);

CREATE TABLE IF NOT EXISTS staff (
    staff_id            TEXT PRIMARY KEY,
    name                TEXT NOT NULL,
    role                TEXT NOT NULL CHECK (role IN ('Paramedic', 'Driver', 'Inventory Manager')),
    assigned_shift      TEXT,
    assigned_vehicle_id TEXT REFERENCES vehicles(vehicle_id)
);

CREATE TABLE IF NOT EXISTS stock_takes (
    audit_id TEXT PRIMARY KEY,
    taken_by TEXT,
    taken_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stock_take_lines (
    audit_id         TEXT NOT NULL REFERENCES stock_takes(audit_id) ON DELETE CASCADE,
    item_id          TEXT NOT NULL,
    system_quantity  INTEGER NOT NULL,
    counted_quantity INTEGER NOT NULL,
    PRIMARY KEY (audit_id, item_id)
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
