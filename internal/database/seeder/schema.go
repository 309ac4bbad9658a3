package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"breneo/internal/database"
)

// ErrSchemaMismatch is returned when a table lacks columns a seeder writes,
// which usually means migrations have not been applied.
var ErrSchemaMismatch = errors.New("schema mismatch")

// RequireColumns checks that table exists with every listed column.
func RequireColumns(ctx context.Context, db database.Querier, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if missing := missingColumns(existing, columns); len(missing) > 0 {
		return fmt.Errorf("%w: %s lacks %s", ErrSchemaMismatch, table, strings.Join(missing, ", "))
	}
	return nil
}

func missingColumns(existing map[string]struct{}, want []string) []string {
	var missing []string
	for _, col := range want {
		if _, ok := existing[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
