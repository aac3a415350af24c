package seed

import (
	"fmt"
	"strings"
)

const defaultBatchSize = 200

// batchInsert writes rows into table in chunks of at most batchSize using
// INSERT OR REPLACE, so re-running a step after a partial failure never
// duplicates rows keyed by primary key. Returns the number of rows written.
func batchInsert(db DBTX, table string, columns []string, rows [][]any, batchSize int) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	prefix := fmt.Sprintf("INSERT OR REPLACE INTO %s(%s) VALUES ", table, strings.Join(columns, ", "))

	written := 0
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		values := make([]string, len(chunk))
		args := make([]any, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			if len(row) != len(columns) {
				return written, fmt.Errorf("batch insert %s: row %d has %d values, want %d", table, start+i, len(row), len(columns))
			}
			values[i] = placeholders
			args = append(args, row...)
		}

		if _, err := db.Exec(prefix+strings.Join(values, ", "), args...); err != nil {
			return written, fmt.Errorf("batch insert %s: %w", table, err)
		}
		written += len(chunk)
	}
	return written, nil
}
