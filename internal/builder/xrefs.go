package builder

import (
	"github.com/tordrt/seqschema/internal/db"
	"github.com/tordrt/seqschema/internal/naming"
	"github.com/tordrt/seqschema/internal/schema"
)

// addXrefRow records one side of a junction table. The two foreign keys
// arrive in any order: the first one seen fills the first endpoint.
func (b *build) addXrefRow(row db.ForeignKeyRow) {
	x, ok := b.xrefs[row.TableName]
	if !ok {
		b.xrefs[row.TableName] = &schema.Xref{
			FirstTable: row.ReferencedTableName,
			FirstField: row.ReferencedColumnName,
			XrefTable:  row.TableName,
		}
		b.xrefOrder = append(b.xrefOrder, row.TableName)
		return
	}

	x.SecondTable = row.ReferencedTableName
	x.SecondField = row.ReferencedColumnName
}

// buildXrefs adds each complete junction table to the schema and gives both
// endpoint tables a list field of the other endpoint.
func (b *build) buildXrefs() {
	s := b.schema

	for _, name := range b.xrefOrder {
		x := b.xrefs[name]
		if !x.Complete() {
			b.log.Warnw("junction table has a single foreign key, skipping", "xref", name)
			continue
		}

		first, okFirst := b.tableLookup[x.FirstTable]
		second, okSecond := b.tableLookup[x.SecondTable]
		if !okFirst || !okSecond {
			b.log.Warnw("unable to find junction table endpoints, skipping",
				"xref", name,
				"firstTable", x.FirstTable,
				"secondTable", x.SecondTable)
			continue
		}

		s.Xrefs = append(s.Xrefs, *x)

		s.AddField(first, schema.Field{
			Name:        naming.CamelCase(x.SecondTable),
			Type:        naming.Singular(x.SecondTable) + "Pojo[]",
			IsReference: true,
		})
		s.AddField(second, schema.Field{
			Name:        naming.CamelCase(x.FirstTable),
			Type:        naming.Singular(x.FirstTable) + "Pojo[]",
			IsReference: true,
		})
	}
}
