package builder

import (
	"strings"

	"github.com/tordrt/seqschema/internal/schema"
)

// resolveIDFields marks the first field of every table as its identity field
// when it carries the identity suffix, then resolves prefixed foreign keys.
// Declaration order is the only primary key signal used.
func (b *build) resolveIDFields() {
	s := b.schema

	for i := range s.Tables {
		t := &s.Tables[i]
		if len(t.Fields) == 0 {
			continue
		}

		name := t.Fields[0].Name
		if !s.IDFieldLookup[name] && schema.HasSuffixFold(name, s.IDSuffix) {
			s.IDFields = append(s.IDFields, schema.FieldRef{Table: i, Field: 0})
			s.IDFieldLookup[name] = true
		}
	}

	b.resolvePrefixedForeignKeys()
}

// resolvePrefixedForeignKeys finds fields such as ownerUserId that end in the
// identity suffix without being identity fields themselves, and records the
// type of the identity field they point at (userId -> UserId).
func (b *build) resolvePrefixedForeignKeys() {
	s := b.schema

	for i := range s.Tables {
		t := &s.Tables[i]

		// the first field is never a prefixed foreign key
		for j := 1; j < len(t.Fields); j++ {
			f := &t.Fields[j]
			if s.IDFieldLookup[f.Name] || len(f.Name) <= len(s.IDSuffix) || !schema.HasSuffixFold(f.Name, s.IDSuffix) {
				continue
			}

			if target, ok := b.prefixedTarget(f.Name); ok {
				f.TargetIDFieldType = s.Naming.Default(target)
			}
		}
	}
}

// prefixedTarget tries every split point from the left and returns the first
// remainder, with its first letter lowered, that is a known identity field.
func (b *build) prefixedTarget(name string) (string, bool) {
	s := b.schema
	for c := 1; c < len(name)-len(s.IDSuffix); c++ {
		rest := strings.ToLower(name[c:c+1]) + name[c+1:]
		if s.IDFieldLookup[rest] {
			return rest, true
		}
	}
	return "", false
}
