// Package memory provides an in-process RecordStore. It backs local runs
// without a database and the usecase tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"go-recruitment-ops/internal/domain"
)

// Compile-time contract assertion
var _ domain.RecordStore = (*Store)(nil)

// Store keeps every table as an ordered slice of rows
type Store struct {
	mu     sync.RWMutex
	tables map[string][]domain.Row
}

// NewStore creates a store holding a copy of the seed rows. Tables missing
// from seed start empty.
func NewStore(seed map[string][]domain.Row) *Store {
	s := &Store{tables: make(map[string][]domain.Row, len(domain.TableColumns))}
	for table := range domain.TableColumns {
		s.tables[table] = copyRows(seed[table])
	}
	return s
}

// LoadSeedFile reads a JSON object of table name to row arrays
func LoadSeedFile(path string) (map[string][]domain.Row, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed map[string][]domain.Row
	if err := json.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for table, rows := range seed {
		cols, ok := domain.TableColumns[table]
		if !ok {
			return nil, fmt.Errorf("seed file: unknown table %q", table)
		}
		for i, row := range rows {
			if len(row) != len(cols) {
				return nil, fmt.Errorf("seed file: %s row %d has %d fields, want %d", table, i, len(row), len(cols))
			}
			for j, col := range cols {
				if integerColumns[col] && !isIntegral(row[j]) {
					return nil, fmt.Errorf("seed file: %s row %d: %s must be a whole number, got %v", table, i, col, row[j])
				}
			}
		}
	}
	return seed, nil
}

// integerColumns are stored as INTEGER by the Postgres schema
var integerColumns = map[string]bool{
	"birth_year":       true,
	"number_employees": true,
	"rating":           true,
}

// isIntegral accepts null, an empty string, or a whole number as a JSON
// number or numeric string
func isIntegral(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case float64:
		return t == math.Trunc(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return true
		}
		_, err := strconv.Atoi(s)
		return err == nil
	default:
		return false
	}
}

// ReadTable returns a snapshot; later writes do not affect it
func (s *Store) ReadTable(ctx context.Context, table string) ([]domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	return copyRows(rows), nil
}

// ExecuteWrite applies an insert or update statement
func (s *Store) ExecuteWrite(ctx context.Context, stmt domain.Statement, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cols, ok := domain.TableColumns[stmt.Table]
	if !ok {
		return fmt.Errorf("unknown table %q", stmt.Table)
	}
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}
	for _, c := range append(append([]string{}, stmt.Columns...), stmt.KeyColumns...) {
		if _, ok := index[c]; !ok {
			return fmt.Errorf("%s: unknown column %q", stmt.Table, c)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch stmt.Kind {
	case domain.StatementInsert:
		if len(args) != len(stmt.Columns) {
			return fmt.Errorf("%s: insert expects %d arguments, got %d", stmt.Table, len(stmt.Columns), len(args))
		}
		row := make(domain.Row, len(cols))
		for i, c := range stmt.Columns {
			row[index[c]] = args[i]
		}
		if s.findKey(stmt.Table, row, index) >= 0 {
			if stmt.IgnoreConflict {
				return nil
			}
			return fmt.Errorf("%s: %w", stmt.Table, domain.ErrDuplicateKey)
		}
		s.tables[stmt.Table] = append(s.tables[stmt.Table], row)
		return nil

	case domain.StatementUpdate:
		want := len(stmt.Columns) + len(stmt.KeyColumns)
		if len(args) != want {
			return fmt.Errorf("%s: update expects %d arguments, got %d", stmt.Table, want, len(args))
		}
		keyArgs := args[len(stmt.Columns):]
		for _, row := range s.tables[stmt.Table] {
			if !matches(row, stmt.KeyColumns, keyArgs, index) {
				continue
			}
			for i, c := range stmt.Columns {
				row[index[c]] = args[i]
			}
		}
		return nil
	}
	return fmt.Errorf("%s: unsupported statement kind %d", stmt.Table, stmt.Kind)
}

func (s *Store) findKey(table string, row domain.Row, index map[string]int) int {
	keys := domain.TableKeys[table]
	want := make([]any, len(keys))
	for i, k := range keys {
		want[i] = row[index[k]]
	}
	for i, existing := range s.tables[table] {
		if matches(existing, keys, want, index) {
			return i
		}
	}
	return -1
}

func matches(row domain.Row, keys []string, values []any, index map[string]int) bool {
	for i, k := range keys {
		if fmt.Sprint(row[index[k]]) != fmt.Sprint(values[i]) {
			return false
		}
	}
	return true
}

func copyRows(rows []domain.Row) []domain.Row {
	out := make([]domain.Row, len(rows))
	for i, r := range rows {
		out[i] = append(domain.Row(nil), r...)
	}
	return out
}
