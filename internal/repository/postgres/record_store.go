package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/logger"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type recordStore struct {
	db *pgxpool.Pool
}

// NewRecordStore creates a RecordStore backed by a pgx pool
func NewRecordStore(db *pgxpool.Pool) domain.RecordStore {
	return &recordStore{db: db}
}

// ReadTable selects every row with the columns in contract order
func (s *recordStore) ReadTable(ctx context.Context, table string) ([]domain.Row, error) {
	query, err := selectQuery(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(domain.Row, len(values))
		for i, v := range values {
			row[i] = normalizeValue(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExecuteWrite renders the statement and executes it. Failures are logged
// here and returned to the caller.
func (s *recordStore) ExecuteWrite(ctx context.Context, stmt domain.Statement, args ...any) error {
	query, err := renderStatement(stmt)
	if err != nil {
		return err
	}
	if want := len(stmt.Columns) + len(stmt.KeyColumns); len(args) != want {
		return fmt.Errorf("%s: statement expects %d arguments, got %d", stmt.Table, want, len(args))
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		logger.Log.Error("Failed to write to database", "table", stmt.Table, "error", err)
		return err
	}
	return nil
}

func selectQuery(table string) (string, error) {
	cols, ok := domain.TableColumns[table]
	if !ok {
		return "", fmt.Errorf("unknown table %q", table)
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		quoteAll(cols), pq.QuoteIdentifier(table), quoteAll(domain.TableKeys[table])), nil
}

func renderStatement(stmt domain.Statement) (string, error) {
	if _, ok := domain.TableColumns[stmt.Table]; !ok {
		return "", fmt.Errorf("unknown table %q", stmt.Table)
	}
	if len(stmt.Columns) == 0 {
		return "", fmt.Errorf("%s: statement has no columns", stmt.Table)
	}
	table := pq.QuoteIdentifier(stmt.Table)

	switch stmt.Kind {
	case domain.StatementInsert:
		placeholders := make([]string, len(stmt.Columns))
		for i := range stmt.Columns {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, quoteAll(stmt.Columns), strings.Join(placeholders, ", "))
		if stmt.IgnoreConflict {
			query += fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", quoteAll(domain.TableKeys[stmt.Table]))
		}
		return query, nil

	case domain.StatementUpdate:
		if len(stmt.KeyColumns) == 0 {
			return "", fmt.Errorf("%s: update without key columns", stmt.Table)
		}
		argIndex := 1
		sets := make([]string, len(stmt.Columns))
		for i, c := range stmt.Columns {
			sets[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(c), argIndex)
			argIndex++
		}
		conds := make([]string, len(stmt.KeyColumns))
		for i, c := range stmt.KeyColumns {
			conds[i] = fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(c), argIndex)
			argIndex++
		}
		return fmt.Sprintf("UPDATE %s SET %s WHERE %s",
			table, strings.Join(sets, ", "), strings.Join(conds, " AND ")), nil
	}
	return "", fmt.Errorf("%s: unsupported statement kind %d", stmt.Table, stmt.Kind)
}

func quoteAll(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pq.QuoteIdentifier(c)
	}
	return strings.Join(quoted, ", ")
}

// normalizeValue turns driver-specific values into plain Go values
func normalizeValue(v any) any {
	switch t := v.(type) {
	case pgtype.Numeric:
		if !t.Valid {
			return nil
		}
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case [16]byte:
		return fmt.Sprintf("%x", t)
	default:
		return v
	}
}
