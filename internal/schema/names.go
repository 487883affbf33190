package schema

import (
	"github.com/tordrt/seqschema/internal/naming"
)

func typeName(conv naming.Options, tableName, suffix string) string {
	return conv.Default(naming.SnakeCase(tableName) + suffix)
}

// PojoName is the plain object type name, e.g. AccountsPojo.
func (t *Table) PojoName(conv naming.Options) string {
	return typeName(conv, t.Name, "_pojo")
}

// InstanceTypeName is the model instance type name, e.g. AccountsInstance.
func (t *Table) InstanceTypeName(conv naming.Options) string {
	return typeName(conv, t.Name, "_instance")
}

// ModelTypeName is the model type name, e.g. AccountsModel.
func (t *Table) ModelTypeName(conv naming.Options) string {
	return typeName(conv, t.Name, "_model")
}

func (t *Table) AssertValidMethodName(conv naming.Options) string {
	return conv.Method("assert_valid_" + naming.SnakeCase(t.Name))
}

func (t *Table) GetterName(conv naming.Options) string {
	return conv.Getter("get_" + naming.SnakeCase(t.Name))
}

func (t *Table) SingularName() string {
	return naming.Singular(t.Name)
}

func (t *Table) SingularCamel() string {
	return naming.CamelCase(t.SingularName())
}

func (t *Table) PascalName() string {
	return naming.PascalCase(t.Name)
}

func (t *Table) CamelName() string {
	return naming.CamelCase(t.Name)
}

// ModelName is the identifier the generated code uses for the table's model.
func (t *Table) ModelName(useModelFactory bool) string {
	if useModelFactory {
		return t.CamelName()
	}
	return t.Name
}

// ProperCaseName is the field name converted with the default case style.
func (f *Field) ProperCaseName(conv naming.Options) string {
	return conv.Default(f.Name)
}

// NameAndNullable returns the field name with an optional marker when the
// value may be absent on a new record.
func (f *Field) NameAndNullable() string {
	optional := f.Nullable ||
		isTimestampName(f.Name) ||
		f.Default != nil ||
		f.Name == "id" ||
		f.IsReference
	if optional {
		return f.Name + "?"
	}
	return f.Name
}

func (r *Reference) PrimaryTableModelName(conv naming.Options) string {
	return typeName(conv, r.PrimaryTable, "_model")
}

func (r *Reference) ForeignTableModelName(conv naming.Options) string {
	return typeName(conv, r.ForeignTable, "_model")
}

func (r *Reference) PrimaryTableCamel() string {
	return naming.CamelCase(r.PrimaryTable)
}

func (r *Reference) ForeignTableCamel() string {
	return naming.CamelCase(r.ForeignTable)
}

func (r *Reference) PrimaryTableModel(useModelFactory bool) string {
	if useModelFactory {
		return r.PrimaryTableCamel()
	}
	return r.PrimaryTable
}

// AssociationNameQuoted returns the association name as a quoted literal, or
// "" when the reference has none.
func (r *Reference) AssociationNameQuoted() string {
	if r.AssociationName == "" {
		return ""
	}
	return "'" + r.AssociationName + "'"
}

func (x *Xref) FirstTableModelName(conv naming.Options) string {
	return typeName(conv, x.FirstTable, "_model")
}

func (x *Xref) SecondTableModelName(conv naming.Options) string {
	return typeName(conv, x.SecondTable, "_model")
}

func (x *Xref) FirstTableCamel() string {
	return naming.CamelCase(x.FirstTable)
}

func (x *Xref) SecondTableCamel() string {
	return naming.CamelCase(x.SecondTable)
}

// Complete reports whether both endpoints of the junction table were seen.
func (x *Xref) Complete() bool {
	return x.FirstTable != "" && x.SecondTable != ""
}
