package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/medsupply/internal/model"
)

// RecordStockTake stores the outcome of a stock-take for audit.
func RecordStockTake(ctx context.Context, db *sql.DB, takenBy string, discrepancies map[string]model.Discrepancy) (*model.StockTake, error) {
	st := &model.StockTake{
		AuditID:       uuid.NewString(),
		TakenBy:       takenBy,
		TakenAt:       time.Now().UTC().Truncate(time.Second),
		Discrepancies: discrepancies,
	}
	if st.Discrepancies == nil {
		st.Discrepancies = map[string]model.Discrepancy{}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var takenByArg any
	if takenBy != "" {
		takenByArg = takenBy
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO stock_takes (audit_id, taken_by, taken_at) VALUES (?, ?, ?)`,
		st.AuditID, takenByArg, st.TakenAt,
	)
	if err != nil {
		return nil, fmt.Errorf("recording stock-take: %w", err)
	}

	for itemID, d := range st.Discrepancies {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO stock_take_lines (audit_id, item_id, system_quantity, counted_quantity) VALUES (?, ?, ?, ?)`,
			st.AuditID, itemID, d.SystemQuantity, d.CountedQuantity,
		)
		if err != nil {
			return nil, fmt.Errorf("recording discrepancy for %s: %w", itemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing stock-take: %w", err)
	}
	return st, nil
}

// ListStockTakes returns recorded stock-takes, newest first.
func ListStockTakes(ctx context.Context, db *sql.DB) ([]model.StockTake, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT audit_id, taken_by, taken_at FROM stock_takes ORDER BY taken_at DESC, audit_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stock-takes: %w", err)
	}
	defer rows.Close()

	var takes []model.StockTake
	index := make(map[string]int)
	for rows.Next() {
		var st model.StockTake
		var takenBy sql.NullString
		if err := rows.Scan(&st.AuditID, &takenBy, &st.TakenAt); err != nil {
			return nil, fmt.Errorf("scanning stock-take: %w", err)
		}
		st.TakenBy = takenBy.String
		st.Discrepancies = map[string]model.Discrepancy{}
		index[st.AuditID] = len(takes)
		takes = append(takes, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := db.QueryContext(ctx,
		`SELECT audit_id, item_id, system_quantity, counted_quantity FROM stock_take_lines`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stock-take lines: %w", err)
	}
	defer lines.Close()

	for lines.Next() {
		var auditID, itemID string
		var d model.Discrepancy
		if err := lines.Scan(&auditID, &itemID, &d.SystemQuantity, &d.CountedQuantity); err != nil {
			return nil, fmt.Errorf("scanning stock-take line: %w", err)
		}
		if i, ok := index[auditID]; ok {
			takes[i].Discrepancies[itemID] = d
		}
	}
	return takes, lines.Err()
}
