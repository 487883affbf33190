package builder

import (
	"strings"

	"github.com/tordrt/seqschema/internal/db"
	"github.com/tordrt/seqschema/internal/naming"
	"github.com/tordrt/seqschema/internal/schema"
)

// buildReferences processes the foreign key rows followed by the
// relationships declared on custom fields.
func (b *build) buildReferences(rows []db.ForeignKeyRow) {
	if len(rows) == 0 {
		b.log.Warnw("no references defined in database")
	}

	for _, row := range rows {
		b.addReference(row)
	}
	for _, row := range b.customReferences {
		b.addReference(row)
	}
}

func isXrefTable(name string) bool {
	return len(name) > len(schema.XrefPrefix) && strings.HasPrefix(name, schema.XrefPrefix)
}

// addReference handles one foreign key. For
//
//	CREATE TABLE Leads (
//	    leadId integer PRIMARY KEY AUTO_INCREMENT,
//	    accountId integer NOT NULL,
//	    FOREIGN KEY (accountId) REFERENCES Accounts (accountId)
//	);
//
// it adds Leads.account of type AccountsPojo and a reference from Accounts to
// Leads on accountId.
func (b *build) addReference(row db.ForeignKeyRow) {
	if isXrefTable(row.TableName) {
		b.addXrefRow(row)
		return
	}

	s := b.schema
	conv := s.Naming

	child, ok := b.tableLookup[row.TableName]
	if !ok {
		b.log.Warnw("unable to find referencing table",
			"table", row.TableName,
			"column", row.ColumnName,
			"referencedTable", row.ReferencedTableName)
		return
	}

	associationName := row.ReferencedTableName
	if row.ColumnName != row.ReferencedColumnName {
		// ownerUserId -> owner_user_id_users
		associationName = row.ColumnName
		if conv.AppendsTail() {
			associationName += "_" + row.ReferencedTableName
		}
		associationName = conv.Association(associationName)

		if !b.associationsFound[associationName] {
			s.Associations = append(s.Associations, schema.Association{Name: associationName})
			b.associationsFound[associationName] = true
		}
	}

	// owner_user_id_users -> ownerUserIdUser, Accounts -> account
	s.AddField(child, schema.Field{
		Name:        naming.CamelCase(naming.Singular(associationName)),
		Type:        conv.Default(naming.SnakeCase(row.ReferencedTableName) + "_pojo"),
		IsReference: true,
	})

	// The primary key name is derived from the referenced table name rather
	// than looked up, so a table whose key does not follow the convention
	// (Users.id) still yields userId.
	primaryKey := naming.CamelCase(naming.Singular(row.ReferencedTableName)) + naming.TitleCase(s.IDSuffix)

	s.References = append(s.References, schema.Reference{
		PrimaryTable:    row.ReferencedTableName,
		ForeignTable:    row.TableName,
		AssociationName: associationName,
		PrimaryKey:      primaryKey,
		ForeignKey:      row.ColumnName,
	})
}
