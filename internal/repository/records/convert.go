// Package records maps the positional table snapshots of a RecordStore onto
// typed domain records and builds the write statements for each table.
package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-recruitment-ops/internal/domain"
)

// asString renders a stored value as text. Nil becomes the empty string.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return domain.FlagTrue
		}
		return domain.FlagFalse
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func asOptionalString(v any) *string {
	if v == nil {
		return nil
	}
	s := asString(v)
	return &s
}

func asInt(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		return t, nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("non-integral value %v", t)
		}
		return int(t), nil
	default:
		s := strings.TrimSpace(asString(v))
		if s == "" {
			return 0, nil
		}
		return strconv.Atoi(s)
	}
}

func asOptionalInt(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, err := asInt(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func asOptionalFloat(v any) (*float64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return &t, nil
	case float32:
		f := float64(t)
		return &f, nil
	case int:
		f := float64(t)
		return &f, nil
	case int32:
		f := float64(t)
		return &f, nil
	case int64:
		f := float64(t)
		return &f, nil
	default:
		s := strings.TrimSpace(asString(v))
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return &f, nil
	}
}

func optionalFloatArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optionalIntArg(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// checkArity guards the positional contract of a table
func checkArity(table string, row domain.Row) error {
	want := len(domain.TableColumns[table])
	if len(row) != want {
		return fmt.Errorf("%s: row has %d fields, want %d", table, len(row), want)
	}
	return nil
}

// insertStatement writes every column of the table
func insertStatement(table string) domain.Statement {
	return domain.Statement{
		Table:   table,
		Kind:    domain.StatementInsert,
		Columns: domain.TableColumns[table],
	}
}

// updateStatement writes every non-key column, matched by the table key
func updateStatement(table string) domain.Statement {
	keys := domain.TableKeys[table]
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}
	var cols []string
	for _, c := range domain.TableColumns[table] {
		if !isKey[c] {
			cols = append(cols, c)
		}
	}
	return domain.Statement{
		Table:      table,
		Kind:       domain.StatementUpdate,
		Columns:    cols,
		KeyColumns: keys,
	}
}

func writeFailure(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrWriteFailure, action, err)
}
