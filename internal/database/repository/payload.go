package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// updateFields builds an UPDATE from a column payload. Only columns in allowed
// may appear; unknown columns fail before any I/O so callers surface bugs
// instead of silently dropping writes.
func updateFields(ctx context.Context, db *sql.DB, table string, allowed map[string]bool, id string, payload map[string]any) error {
	if len(payload) == 0 {
		return fmt.Errorf("%s: empty update payload", table)
	}
	cols := make([]string, 0, len(payload))
	for col := range payload {
		if !allowed[col] {
			return fmt.Errorf("%s: column %q not updatable", table, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+1)
	for _, col := range cols {
		sets = append(sets, col+" = ?")
		args = append(args, payload[col])
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: no row with id %s", table, id)
	}
	return nil
}

// reorder rewrites sort_order for the given ids in one transaction. The scope
// clause restricts writes to the owning list so a stray id cannot cross lists.
func reorder(ctx context.Context, db *sql.DB, table, scopeCol string, scopeVal any, ids []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("UPDATE %s SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND %s = ?", table, scopeCol)
	for idx, id := range ids {
		if _, err := tx.ExecContext(ctx, query, idx, id, scopeVal); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
