// Package naming holds the case-conversion and inflection conventions used to
// derive type, method and association names from database identifiers.
package naming

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Case names a case-conversion style.
type Case string

const (
	Camel    Case = "camel"
	Pascal   Case = "pascal"
	Snake    Case = "snake"
	Constant Case = "constant"
	Param    Case = "param"
	Title    Case = "title"
	Lower    Case = "lower"
	Upper    Case = "upper"
)

// TailTableName is the association tail value that appends the referenced
// table name to a foreign-key derived association name. Any other value,
// including an empty one, leaves the tail off. Settings files written for
// the Sequelize generator used the opposite reading (tableName suppressed
// the tail) and must be flipped when reused.
const TailTableName = "tableName"

var converters = map[Case]func(string) string{
	Camel:    CamelCase,
	Pascal:   PascalCase,
	Snake:    SnakeCase,
	Constant: func(s string) string { return strings.ToUpper(inflect.Underscore(s)) },
	Param:    inflect.Dasherize,
	Title:    TitleCase,
	Lower:    strings.ToLower,
	Upper:    strings.ToUpper,
}

// CaseOption selects a case style.
type CaseOption struct {
	CaseType Case `yaml:"caseType"`
}

// AssociationOption controls how association names are derived.
type AssociationOption struct {
	Tail     string `yaml:"tail"`
	CaseType Case   `yaml:"caseType"`
}

// Options is the naming convention of a generated model.
type Options struct {
	Defaults        CaseOption        `yaml:"defaults"`
	AssociationName AssociationOption `yaml:"associationName"`
	MethodName      CaseOption        `yaml:"methodName"`
	GetterName      CaseOption        `yaml:"getterName"`
}

// DefaultOptions returns the convention used when no settings are supplied.
func DefaultOptions() Options {
	return Options{
		Defaults:        CaseOption{CaseType: Pascal},
		AssociationName: AssociationOption{Tail: TailTableName, CaseType: Snake},
		MethodName:      CaseOption{CaseType: Camel},
		GetterName:      CaseOption{CaseType: Camel},
	}
}

// Known reports whether c is a supported case style.
func Known(c Case) bool {
	_, ok := converters[c]
	return ok
}

// Convert applies style c to s. Unknown styles leave s unchanged.
func Convert(c Case, s string) string {
	fn, ok := converters[c]
	if !ok {
		return s
	}
	return fn(s)
}

// Default converts s with the default case style.
func (o Options) Default(s string) string {
	return Convert(o.Defaults.CaseType, s)
}

// Method converts s with the method-name case style.
func (o Options) Method(s string) string {
	return Convert(o.MethodName.CaseType, s)
}

// Getter converts s with the getter case style, falling back to the default
// style when none is configured.
func (o Options) Getter(s string) string {
	if o.GetterName.CaseType == "" {
		return o.Default(s)
	}
	return Convert(o.GetterName.CaseType, s)
}

// Association converts s with the association case style. Without one the
// name is kept as is.
func (o Options) Association(s string) string {
	if o.AssociationName.CaseType == "" {
		return s
	}
	return Convert(o.AssociationName.CaseType, s)
}

// AppendsTail reports whether association names get the referenced table name.
func (o Options) AppendsTail() bool {
	return o.AssociationName.Tail == TailTableName
}

// CamelCase converts s to lowerCamelCase.
func CamelCase(s string) string {
	if s == "" {
		return s
	}
	return inflect.CamelizeDownFirst(s)
}

// PascalCase converts s to UpperCamelCase.
func PascalCase(s string) string {
	if s == "" {
		return s
	}
	return inflect.Camelize(s)
}

// SnakeCase converts s to snake_case.
func SnakeCase(s string) string {
	return inflect.Underscore(s)
}

// TitleCase converts s to space separated Title Case.
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	return inflect.Titleize(s)
}

// Singular returns the singular form of s.
func Singular(s string) string {
	return inflect.Singularize(s)
}

// Plural returns the plural form of s.
func Plural(s string) string {
	return inflect.Pluralize(s)
}
