package schema

import (
	"regexp"
	"strings"
)

// semanticTypes maps a column data type to the type used in generated type
// definitions.
var semanticTypes = map[string]string{
	"tinyint": "boolean",
	"bool":    "boolean",
	"boolean": "boolean",

	"smallint":  "number",
	"int":       "number",
	"integer":   "number",
	"mediumint": "number",
	"bigint":    "number",
	"year":      "number",
	"float":     "number",
	"double":    "number",
	"decimal":   "number",
	"numeric":   "number",
	"real":      "number",
	"int2":      "number",
	"int4":      "number",
	"int8":      "number",
	"float4":    "number",
	"float8":    "number",

	"timestamp":   "Date",
	"timestamptz": "Date",
	"date":        "Date",
	"datetime":    "Date",

	"tinyblob":   "Buffer",
	"mediumblob": "Buffer",
	"longblob":   "Buffer",
	"blob":       "Buffer",
	"binary":     "Buffer",
	"varbinary":  "Buffer",
	"bit":        "Buffer",
	"bytea":      "Buffer",

	"char":       "string",
	"bpchar":     "string",
	"varchar":    "string",
	"tinytext":   "string",
	"mediumtext": "string",
	"longtext":   "string",
	"text":       "string",
	"enum":       "string",
	"set":        "string",
	"time":       "string",
	"geometry":   "string",
	"uuid":       "string",
	"json":       "string",
	"jsonb":      "string",
}

// persistenceTypes maps a column data type to the persistence framework's
// column type expression.
var persistenceTypes = map[string]string{
	"tinyint": "Sequelize.BOOLEAN",
	"bool":    "Sequelize.BOOLEAN",
	"boolean": "Sequelize.BOOLEAN",

	"smallint":  "Sequelize.INTEGER",
	"int":       "Sequelize.INTEGER",
	"integer":   "Sequelize.INTEGER",
	"mediumint": "Sequelize.INTEGER",
	"bigint":    "Sequelize.INTEGER",
	"year":      "Sequelize.INTEGER",
	"int2":      "Sequelize.INTEGER",
	"int4":      "Sequelize.INTEGER",
	"int8":      "Sequelize.INTEGER",

	"float":   "Sequelize.DECIMAL",
	"double":  "Sequelize.DECIMAL",
	"decimal": "Sequelize.DECIMAL",
	"numeric": "Sequelize.DECIMAL",
	"real":    "Sequelize.DECIMAL",
	"float4":  "Sequelize.DECIMAL",
	"float8":  "Sequelize.DECIMAL",

	"timestamp":   "Sequelize.DATE",
	"timestamptz": "Sequelize.DATE",
	"date":        "Sequelize.DATE",
	"datetime":    "Sequelize.DATE",

	"tinyblob":   "Sequelize.BLOB",
	"mediumblob": "Sequelize.BLOB",
	"longblob":   "Sequelize.BLOB",
	"blob":       "Sequelize.BLOB",
	"binary":     "Sequelize.BLOB",
	"varbinary":  "Sequelize.BLOB",
	"bit":        "Sequelize.BLOB",
	"bytea":      "Sequelize.BLOB",

	"char":       "Sequelize.STRING",
	"bpchar":     "Sequelize.STRING",
	"varchar":    "Sequelize.STRING",
	"tinytext":   "Sequelize.STRING",
	"mediumtext": "Sequelize.STRING",
	"longtext":   "Sequelize.STRING",
	"text":       "Sequelize.STRING",
	"enum":       "Sequelize.ENUM",
	"set":        "Sequelize.STRING",
	"time":       "Sequelize.STRING",
	"geometry":   "Sequelize.STRING",
	"uuid":       "Sequelize.STRING",
	"json":       "Sequelize.STRING",
	"jsonb":      "Sequelize.STRING",
}

var positiveInteger = regexp.MustCompile(`^[1-9][0-9]*$`)

// TranslatedFieldType returns the semantic type of f. Unknown types pass
// through unchanged; navigation types (FooPojo, FooPojo[]) are expected and
// not reported.
func (s *Schema) TranslatedFieldType(f *Field) string {
	if translated, ok := semanticTypes[f.Type]; ok {
		return translated
	}

	if !strings.HasSuffix(f.Type, "Pojo") && !strings.HasSuffix(f.Type, "Pojo[]") {
		s.log.Warnw("unable to translate field type", "field", f.Name, "type", f.Type)
	}

	if rest, ok := strings.CutPrefix(f.Type, "types."); ok {
		return rest
	}
	return f.Type
}

// PersistenceFieldType returns the persistence framework type expression for f.
func (s *Schema) PersistenceFieldType(f *Field) string {
	translated, ok := persistenceTypes[f.Type]
	if !ok {
		s.log.Warnw("unable to map persistence type", "field", f.Name, "type", f.Type)
		translated = f.Type
	}
	if f.Type == "enum" && len(f.ColumnType) > 4 {
		// enum('a','b') -> ENUM("a","b"), keeping escaped '' as '
		values := strings.ReplaceAll(f.ColumnType[4:], "'", `"`)
		translated += strings.ReplaceAll(values, `""`, "'")
	}
	return translated
}

// CustomFieldType returns the type used for f in generated type definitions:
// identity fields get their own named type, navigation fields keep their
// synthesized type and columns are translated.
func (s *Schema) CustomFieldType(f *Field) string {
	switch {
	case s.IsIDField(f):
		if f.TargetIDFieldType != "" {
			return f.TargetIDFieldType
		}
		return f.ProperCaseName(s.Naming)
	case f.IsReference:
		return f.Type
	default:
		return s.TranslatedFieldType(f)
	}
}

// DefineFieldType returns the persistence column definition of f. f must be
// a field stored in s.
func (s *Schema) DefineFieldType(f *Field) string {
	t := s.TableOf(f)

	var parts []string
	switch {
	case len(t.Fields) > 0 && f == &t.Fields[0]:
		parts = []string{"type: Sequelize.INTEGER", "primaryKey: true", "autoIncrement: true"}
	case t.IsXref() && len(t.Fields) > 1 && f == &t.Fields[1]:
		parts = []string{`type: "number"`, "primaryKey: true"}
	default:
		parts = []string{"type: " + s.PersistenceFieldType(f)}
		if !f.Nullable && !isTimestampName(f.Name) {
			parts = append(parts, "allowNull: false")
		}
		if f.Default != nil {
			parts = append(parts, "defaultValue: "+defaultValueLiteral(f))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func defaultValueLiteral(f *Field) string {
	raw := *f.Default
	if f.Type == "tinyint" {
		if raw == "1" {
			return "true"
		}
		return "false"
	}
	if !positiveInteger.MatchString(raw) {
		return `"` + raw + `"`
	}
	return raw
}

// isTimestampName matches the created_at / updatedAt naming convention.
func isTimestampName(name string) bool {
	return strings.Contains(name, "_at") || strings.HasSuffix(name, "At")
}
