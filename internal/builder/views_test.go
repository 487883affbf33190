package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/seqschema/internal/db"
	"github.com/tordrt/seqschema/internal/schema"
)

func TestViewDisplayName(t *testing.T) {
	forms := []string{"Accounts", "Account", "Leads", "Lead"}

	tests := []struct {
		name string
		view string
		want string
	}{
		{name: "two table names", view: "accountleads", want: "AccountLeads"},
		{name: "match at the end", view: "leadaccount", want: "LeadAccount"},
		{name: "plural form", view: "accountssummary", want: "AccountsSummary"},
		{name: "single trailing character", view: "accountsx", want: "AccountsX"},
		{name: "no match", view: "dailyrevenue", want: "dailyrevenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, viewDisplayName(tt.view, forms))
		})
	}
}

func TestIsViewName(t *testing.T) {
	assert.True(t, isViewName("accountleads"))
	assert.True(t, isViewName("daily_revenue"))
	assert.False(t, isViewName("AccountLeads"))
	assert.False(t, isViewName("Leads"))
}

func viewColumns() []db.ColumnRow {
	return []db.ColumnRow{
		col("Accounts", "accountId", 1),
		col("Accounts", "name", 2),
		col("Leads", "leadId", 1),
		col("Leads", "accountId", 2),
		col("accountleads", "accountId", 1),
		col("accountleads", "leadId", 2),
		col("accountleads", "total", 3),
	}
}

func TestRenameViewsIsIdempotent(t *testing.T) {
	columns := append(viewColumns(), col("dailyrevenue", "amount", 1))

	b := newBuild(Options{})
	rows, err := b.prepareColumns(columns)
	require.NoError(t, err)
	b.buildTables(rows, nil)

	b.renameViews()
	first := make([]string, 0, len(b.schema.Tables))
	for _, tbl := range b.schema.Tables {
		first = append(first, tbl.Name)
	}
	views := append([]int(nil), b.schema.Views...)

	b.renameViews()
	second := make([]string, 0, len(b.schema.Tables))
	for _, tbl := range b.schema.Tables {
		second = append(second, tbl.Name)
	}

	assert.Equal(t, []string{"Accounts", "Leads", "AccountLeads", "dailyrevenue"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, views, b.schema.Views)
	assert.Equal(t, []int{2, 3}, b.schema.Views)
}

func TestViewReferences(t *testing.T) {
	s, err := Build(context.Background(), &fakeProvider{
		columns:     viewColumns(),
		foreignKeys: []db.ForeignKeyRow{fk("Leads", "accountId", "Accounts", "accountId")},
	}, Options{})
	require.NoError(t, err)

	views := s.ViewTables()
	require.Len(t, views, 1)
	view := views[0]
	assert.Equal(t, "AccountLeads", view.Name)
	assert.True(t, view.IsView)

	assert.Equal(t, []string{"accountId", "leadId", "total", "Account", "Lead"}, fieldNames(view))
	assert.Equal(t, "AccountPojo", field(t, s, "AccountLeads", "Account").Type)
	assert.Equal(t, "LeadPojo", field(t, s, "AccountLeads", "Lead").Type)

	owner := field(t, s, "Accounts", "accountLeads")
	assert.True(t, owner.IsReference)
	assert.Equal(t, "AccountLeadPojo[]", owner.Type)
	assert.Equal(t, "AccountLeadPojo[]", field(t, s, "Leads", "accountLeads").Type)

	require.Len(t, s.References, 3)
	assert.Equal(t, schema.Reference{
		PrimaryTable: "Accounts",
		ForeignTable: "AccountLeads",
		PrimaryKey:   "accountId",
		ForeignKey:   "accountId",
		IsView:       true,
	}, s.References[1])
	assert.Equal(t, "Leads", s.References[2].PrimaryTable)
	assert.True(t, s.References[2].IsView)

	for _, r := range s.UniqueReferences() {
		assert.False(t, r.IsView)
		assert.NotEqual(t, "AccountLeads", r.ForeignTable)
	}
}

func TestViewReferenceWithoutOwner(t *testing.T) {
	logger, logs := observedLogger()

	columns := append(viewColumns(),
		col("regionstats", "regionId", 1),
		col("regionstats", "total", 2),
	)

	s, err := Build(context.Background(), &fakeProvider{columns: columns}, Options{Logger: logger})
	require.NoError(t, err)

	assert.Len(t, s.Views, 2)
	assert.Equal(t, []string{"regionId", "total"}, fieldNames(s.Table("regionstats")))

	missing := logs.FilterMessage("unable to find related table for view").All()
	require.Len(t, missing, 1)
	assert.Equal(t, "Regions", missing[0].ContextMap()["expected"])

	for _, r := range s.References {
		assert.NotEqual(t, "regionstats", r.ForeignTable)
	}
}
