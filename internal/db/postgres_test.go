package db

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConn(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mock.Close(context.Background()) })
	return mock
}

func TestPostgresProviderColumns(t *testing.T) {
	mock := newMockConn(t)

	rows := pgxmock.NewRows(columnLabels).
		AddRow("leads", "lead_id", "NO", "int4", "integer", strPtr("nextval('leads_lead_id_seq'::regclass)"), 1).
		AddRow("leads", "name", "YES", "varchar", "character varying", nil, 2)
	mock.ExpectQuery("FROM information_schema.columns c").
		WithArgs("public").
		WillReturnRows(rows)

	got, err := NewPostgresProvider(mock, "public").Columns(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []ColumnRow{
		{TableName: "leads", ColumnName: "lead_id", IsNullable: "NO", DataType: "int4", ColumnType: "integer", ColumnDefault: strPtr("nextval('leads_lead_id_seq'::regclass)"), OrdinalPosition: 1},
		{TableName: "leads", ColumnName: "name", IsNullable: "YES", DataType: "varchar", ColumnType: "character varying", OrdinalPosition: 2},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProviderCustomFields(t *testing.T) {
	mock := newMockConn(t)

	labels := append(append([]string{}, columnLabels...), "referenced_table_name", "referenced_column_name")
	rows := pgxmock.NewRows(labels).
		AddRow("Accounts", "primaryLeadId", "YES", "int4", "integer", nil, 5, strPtr("Leads"), strPtr("leadId"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "crm"."SequelizeCustomFieldDefinitions"`)).WillReturnRows(rows)

	got, err := NewPostgresProvider(mock, "crm").CustomFields(context.Background(), "SequelizeCustomFieldDefinitions")
	require.NoError(t, err)
	require.Len(t, got, 1)

	ref, ok := got[0].Reference()
	require.True(t, ok)
	assert.Equal(t, ForeignKeyRow{
		TableName:            "Accounts",
		ColumnName:           "primaryLeadId",
		ReferencedTableName:  "Leads",
		ReferencedColumnName: "leadId",
	}, ref)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProviderForeignKeys(t *testing.T) {
	mock := newMockConn(t)

	rows := pgxmock.NewRows([]string{"table_name", "column_name", "referenced_table_name", "referenced_column_name"}).
		AddRow("Leads", "accountId", "Accounts", "accountId")
	mock.ExpectQuery("WHERE tc.constraint_type = 'FOREIGN KEY'").
		WithArgs("public").
		WillReturnRows(rows)

	got, err := NewPostgresProvider(mock, "public").ForeignKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ForeignKeyRow{
		{TableName: "Leads", ColumnName: "accountId", ReferencedTableName: "Accounts", ReferencedColumnName: "accountId"},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProviderQueryError(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery("information_schema.columns").WithArgs("public").WillReturnError(assert.AnError)

	got, err := NewPostgresProvider(mock, "public").Columns(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, assert.AnError)
}
