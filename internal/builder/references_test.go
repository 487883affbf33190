package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/seqschema/internal/db"
	"github.com/tordrt/seqschema/internal/naming"
	"github.com/tordrt/seqschema/internal/schema"
)

func TestAssociationNaming(t *testing.T) {
	tests := []struct {
		name      string
		naming    naming.AssociationOption
		wantName  string
		wantField string
	}{
		{
			name:      "snake with table name tail",
			naming:    naming.AssociationOption{Tail: naming.TailTableName, CaseType: naming.Snake},
			wantName:  "owner_user_id_users",
			wantField: "ownerUserIdUser",
		},
		{
			name:      "camel without tail",
			naming:    naming.AssociationOption{CaseType: naming.Camel},
			wantName:  "ownerUserId",
			wantField: "ownerUserId",
		},
		{
			name:      "no case style keeps the raw name",
			naming:    naming.AssociationOption{Tail: naming.TailTableName},
			wantName:  "ownerUserId_Users",
			wantField: "ownerUserIdUser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := naming.DefaultOptions()
			conv.AssociationName = tt.naming

			s, err := Build(context.Background(), salesProvider(), Options{Naming: conv})
			require.NoError(t, err)

			require.Len(t, s.Associations, 1)
			assert.Equal(t, tt.wantName, s.Associations[0].Name)
			assert.Equal(t, tt.wantName, s.References[1].AssociationName)

			leads := s.Table("Leads")
			nav := leads.Fields[len(leads.Fields)-1]
			assert.Equal(t, tt.wantField, nav.Name)
			assert.True(t, nav.IsReference)
			assert.Equal(t, "UsersPojo", nav.Type)
		})
	}
}

func TestAssociationsRecordedOnce(t *testing.T) {
	p := salesProvider()
	p.columns = append(p.columns,
		col("Deals", "dealId", 1),
		col("Deals", "ownerUserId", 2),
	)
	p.foreignKeys = append(p.foreignKeys, fk("Deals", "ownerUserId", "Users", "userId"))

	s, err := Build(context.Background(), p, Options{})
	require.NoError(t, err)

	assert.Equal(t, []schema.Association{{Name: "owner_user_id_users"}}, s.Associations)
	assert.Len(t, s.References, 3)
	assert.Equal(t, "UsersPojo", field(t, s, "Deals", "ownerUserIdUser").Type)
}

func TestMatchingColumnsUseTableName(t *testing.T) {
	s, err := Build(context.Background(), salesProvider(), Options{})
	require.NoError(t, err)

	ref := s.References[0]
	assert.Equal(t, "Accounts", ref.AssociationName)
	assert.False(t, ref.IsView)
	assert.NotContains(t, s.Associations, schema.Association{Name: "Accounts"})
}

func TestReferenceToUnknownTableIsSkipped(t *testing.T) {
	logger, logs := observedLogger()

	p := salesProvider()
	p.foreignKeys = append(p.foreignKeys, fk("Ghosts", "leadId", "Leads", "leadId"))

	s, err := Build(context.Background(), p, Options{Logger: logger})
	require.NoError(t, err)

	assert.Len(t, s.References, 2)
	assert.Equal(t, 1, logs.FilterMessage("unable to find referencing table").Len())
}

func TestNoForeignKeys(t *testing.T) {
	logger, logs := observedLogger()

	p := salesProvider()
	p.foreignKeys = nil

	s, err := Build(context.Background(), p, Options{Logger: logger})
	require.NoError(t, err)

	assert.Empty(t, s.References)
	assert.Equal(t, 1, logs.FilterMessage("no references defined in database").Len())

	// Self references still cover every table.
	unique := s.UniqueReferences()
	require.Len(t, unique, 3)
	for _, r := range unique {
		assert.Equal(t, r.PrimaryTable, r.ForeignTable)
	}
}

func TestIsXrefTable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"XrefLeadTags", true},
		{"Xref", false},
		{"xrefLeadTags", false},
		{"Leads", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isXrefTable(tt.name))
		})
	}
}

func TestUniqueReferencesPreferForeignKeys(t *testing.T) {
	p := salesProvider()
	p.foreignKeys = append(p.foreignKeys, fk("Leads", "accountId", "Accounts", "accountId"))
	p.columns = append(p.columns, db.ColumnRow{TableName: "Opportunities", ColumnName: "accountId", OrdinalPosition: 1})
	p.foreignKeys = append(p.foreignKeys, fk("Opportunities", "accountId", "Accounts", "accountId"))

	s, err := Build(context.Background(), p, Options{})
	require.NoError(t, err)

	unique := s.UniqueReferences()
	seen := make(map[string]bool)
	for _, r := range unique {
		assert.False(t, seen[r.ForeignKey], "duplicate foreign key %s", r.ForeignKey)
		seen[r.ForeignKey] = true
		assert.False(t, r.IsView)
	}

	assert.Equal(t, "Leads", unique[0].ForeignTable)
	assert.Equal(t, "accountId", unique[0].ForeignKey)
}

func TestRepeatedConstraintAddsTwoReferences(t *testing.T) {
	p := salesProvider()
	p.foreignKeys = append(p.foreignKeys, fk("Leads", "accountId", "Accounts", "accountId"))

	s, err := Build(context.Background(), p, Options{})
	require.NoError(t, err)

	var accountRefs int
	for _, r := range s.References {
		if r.PrimaryTable == "Accounts" && r.ForeignKey == "accountId" {
			accountRefs++
		}
	}
	assert.Equal(t, 2, accountRefs)
	assert.Len(t, s.UniqueReferences(), 4)
}
