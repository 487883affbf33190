package builder

import (
	"github.com/tordrt/seqschema/internal/db"
	"github.com/tordrt/seqschema/internal/schema"
)

// buildTables walks the sorted rows once, starting a table whenever the table
// name changes, and adds one field per row. customLookup holds the column
// names of custom fields.
func (b *build) buildTables(rows []db.ColumnRow, customLookup map[string]bool) {
	s := b.schema
	current := -1
	calculatedFound := make(map[string]bool)

	for _, row := range rows {
		if row.TableName == b.opts.CustomFieldTable {
			continue
		}

		if current < 0 || row.TableName != s.Tables[current].Name {
			current = s.AddTable(row.TableName)
			b.tableLookup[row.TableName] = current
		}

		isCalculated := customLookup[row.ColumnName]

		ref := s.AddField(current, schema.Field{
			Name:         row.ColumnName,
			Type:         row.DataType,
			ColumnType:   row.ColumnType,
			Default:      row.ColumnDefault,
			Nullable:     row.IsNullable == "YES",
			IsCalculated: isCalculated,
		})

		// A custom field reused by several tables is listed once.
		if isCalculated && !calculatedFound[row.ColumnName] {
			s.CalculatedFields = append(s.CalculatedFields, ref)
			calculatedFound[row.ColumnName] = true
		}
	}
}
