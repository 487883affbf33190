package builder

import (
	"strings"

	"github.com/tordrt/seqschema/internal/naming"
	"github.com/tordrt/seqschema/internal/schema"
)

// isViewName reports whether name follows the view convention: no upper-case
// letters.
func isViewName(name string) bool {
	return name == strings.ToLower(name)
}

// renameViews flags every view and rebuilds its display name from the names
// of the real tables. Tables already flagged, and mixed-case names, are left
// alone.
func (b *build) renameViews() {
	s := b.schema

	var forms []string
	for i := range s.Tables {
		name := s.Tables[i].Name
		if isViewName(name) {
			continue
		}
		forms = append(forms, name, naming.Singular(name))
	}

	for i := range s.Tables {
		t := &s.Tables[i]
		if t.IsView || !isViewName(t.Name) {
			continue
		}
		t.IsView = true
		s.Views = append(s.Views, i)
		t.Name = viewDisplayName(t.Name, forms)
	}
}

// viewDisplayName splices each matching table name form into the lower-case
// view name, in declaration order, and upper-cases the character following
// the match: accountleads -> AccountLeads.
func viewDisplayName(name string, forms []string) string {
	for _, form := range forms {
		i := strings.Index(name, strings.ToLower(form))
		if i < 0 {
			continue
		}

		end := i + len(form)
		renamed := name[:i] + form
		if len(name) > end {
			renamed += strings.ToUpper(name[end:end+1]) + name[end+1:]
		}
		name = renamed
	}
	return name
}

// addViewReferences links each view to the tables its identity fields belong
// to. The owning table of accountId is expected to be Accounts.
func (b *build) addViewReferences() {
	s := b.schema

	for _, idx := range s.Views {
		count := len(s.Tables[idx].Fields)
		for j := 0; j < count; j++ {
			f := s.Tables[idx].Fields[j]
			if !s.IsIDField(&f) {
				continue
			}
			b.addViewReference(idx, &f)
		}
	}
}

func (b *build) addViewReference(view int, f *schema.Field) {
	s := b.schema
	viewName := s.Tables[view].Name

	proper := f.ProperCaseName(s.Naming)
	cut := len(f.Name) - len(s.IDSuffix)
	if cut <= 0 || cut > len(proper) {
		b.log.Warnw("unable to derive related table for view", "view", viewName, "field", f.Name)
		return
	}

	otherName := naming.Plural(proper[:cut])
	other, ok := b.tableLookup[otherName]
	if !ok {
		b.log.Warnw("unable to find related table for view",
			"view", viewName,
			"field", f.Name,
			"expected", otherName)
		return
	}

	s.References = append(s.References, schema.Reference{
		PrimaryTable: otherName,
		ForeignTable: viewName,
		PrimaryKey:   f.Name,
		ForeignKey:   f.Name,
		IsView:       true,
	})

	otherSingular := naming.Singular(otherName)
	s.AddField(view, schema.Field{
		Name:        otherSingular,
		Type:        otherSingular + "Pojo",
		IsReference: true,
	})
	s.AddField(other, schema.Field{
		Name:        naming.CamelCase(viewName),
		Type:        naming.Singular(viewName) + "Pojo[]",
		IsReference: true,
	})
}
