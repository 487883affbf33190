package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/seqschema/internal/naming"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqschema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, `
database:
  url: mysql://root@tcp(localhost:3306)/crm
  schema: crm
excludeTables:
  - SequelizeMeta
  - AuditLog
idSuffix: Id
customFieldTable: CustomFields
modelFactory: true
naming:
  associationName:
    tail: none
    caseType: camel
  methodName:
    caseType: snake
`)

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mysql://root@tcp(localhost:3306)/crm", settings.Database.URL)
	assert.Equal(t, "crm", settings.Database.Schema)
	assert.Equal(t, []string{"SequelizeMeta", "AuditLog"}, settings.ExcludeTables)
	assert.Equal(t, "Id", settings.IDSuffix)
	assert.Equal(t, "CustomFields", settings.CustomFieldTable)
	assert.True(t, settings.ModelFactory)

	assert.Equal(t, naming.Options{
		Defaults:        naming.CaseOption{CaseType: naming.Pascal},
		AssociationName: naming.AssociationOption{Tail: "none", CaseType: naming.Camel},
		MethodName:      naming.CaseOption{CaseType: naming.Snake},
		GetterName:      naming.CaseOption{CaseType: naming.Camel},
	}, settings.Naming)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	settings, err := Load(writeSettings(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = Load(writeSettings(t, "excludeTables: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadAssociationTail(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		appends  bool
	}{
		{"default", "modelFactory: false\n", true},
		{"table name", "naming:\n  associationName:\n    tail: tableName\n", true},
		{"empty", "naming:\n  associationName:\n    tail: \"\"\n", false},
		{"other value", "naming:\n  associationName:\n    tail: none\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := Load(writeSettings(t, tt.settings))
			require.NoError(t, err)
			assert.Equal(t, tt.appends, settings.Naming.AppendsTail())
		})
	}
}
