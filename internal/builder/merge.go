package builder

import (
	"sort"

	"github.com/tordrt/seqschema/internal/db"
)

// dedupe drops rows whose key was already seen. A table cannot hold two
// columns of the same name, so a repeated column row is always an echo.
// A nil input stays nil.
func dedupe[T any](rows []T, key func(T) string) []T {
	if rows == nil {
		return nil
	}
	seen := make(map[string]bool, len(rows))
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, row)
	}
	return out
}

// undouble returns the first half of rows when the second half repeats it
// row for row, which is how some providers echo their result. Anything else
// is returned as is, so two genuine rows with the same key both survive.
func undouble[T any](rows []T, key func(T) string) []T {
	n := len(rows)
	if n == 0 || n%2 != 0 {
		return rows
	}
	half := n / 2
	for i := 0; i < half; i++ {
		if key(rows[i]) != key(rows[half+i]) {
			return rows
		}
	}
	return rows[:half]
}

// exclude drops rows of excluded tables. A nil input stays nil.
func exclude[T any](rows []T, excluded map[string]bool, tableName func(T) string) []T {
	if rows == nil || len(excluded) == 0 {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if !excluded[tableName(row)] {
			out = append(out, row)
		}
	}
	return out
}

func columnKey(r db.ColumnRow) string {
	return r.TableName + "\x00" + r.ColumnName
}

func columnTable(r db.ColumnRow) string {
	return r.TableName
}

func foreignKeyKey(r db.ForeignKeyRow) string {
	return r.TableName + "\x00" + r.ColumnName + "\x00" + r.ReferencedTableName + "\x00" + r.ReferencedColumnName
}

func foreignKeyTable(r db.ForeignKeyRow) string {
	return r.TableName
}

func customKey(r db.CustomFieldRow) string {
	return columnKey(r.ColumnRow)
}

func customTable(r db.CustomFieldRow) string {
	return r.TableName
}

// prepareColumns flattens and filters the column rows. Nothing to build from
// is fatal.
func (b *build) prepareColumns(columns []db.ColumnRow) ([]db.ColumnRow, error) {
	if columns == nil {
		return nil, ErrNoSchema
	}

	rows := exclude(dedupe(columns, columnKey), b.excluded, columnTable)
	if len(rows) == 0 {
		return nil, ErrEmptySchema
	}
	return rows, nil
}

func (b *build) prepareForeignKeys(rows []db.ForeignKeyRow) []db.ForeignKeyRow {
	return exclude(undouble(rows, foreignKeyKey), b.excluded, foreignKeyTable)
}

// mergeCustomFields adds the custom field rows to the column rows, sorted by
// table then ordinal position, and returns the set of custom column names.
// Custom rows that declare a relationship are kept for the reference pass.
func (b *build) mergeCustomFields(rows []db.ColumnRow, custom []db.CustomFieldRow) ([]db.ColumnRow, map[string]bool) {
	custom = exclude(dedupe(custom, customKey), b.excluded, customTable)

	lookup := make(map[string]bool, len(custom))
	combined := make([]db.ColumnRow, 0, len(rows)+len(custom))
	combined = append(combined, rows...)

	for _, row := range custom {
		lookup[row.ColumnName] = true
		combined = append(combined, row.ColumnRow)

		if ref, ok := row.Reference(); ok {
			b.customReferences = append(b.customReferences, ref)
		}
	}

	sortColumns(combined)
	return combined, lookup
}

// sortColumns orders rows by table name, then ordinal position. Rows of the
// same table and position keep their relative order.
func sortColumns(rows []db.ColumnRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TableName != rows[j].TableName {
			return rows[i].TableName < rows[j].TableName
		}
		return rows[i].OrdinalPosition < rows[j].OrdinalPosition
	})
}

func hasTable(rows []db.ColumnRow, name string) bool {
	for _, row := range rows {
		if row.TableName == name {
			return true
		}
	}
	return false
}
