// Package builder infers a schema.Schema from database metadata rows. The
// build runs as a fixed sequence of steps; any metadata fetch failure aborts
// it and no partial schema is returned.
package builder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tordrt/seqschema/internal/db"
	"github.com/tordrt/seqschema/internal/naming"
	"github.com/tordrt/seqschema/internal/schema"
)

// DefaultCustomFieldTable holds custom, non-stored field definitions.
const DefaultCustomFieldTable = "SequelizeCustomFieldDefinitions"

var (
	// ErrNoSchema is returned when the provider returns no column result at all.
	ErrNoSchema = errors.New("no schema info returned for database")
	// ErrEmptySchema is returned when no columns remain after exclusions.
	ErrEmptySchema = errors.New("empty schema info returned for database")
)

// Options configures a build.
type Options struct {
	// ExcludeTables lists tables whose rows are dropped before anything is built.
	ExcludeTables []string

	// Naming is the naming convention. The zero value selects naming.DefaultOptions.
	Naming naming.Options

	// IDSuffix marks identity fields. Defaults to "id".
	IDSuffix string

	// CustomFieldTable is the table holding custom field definitions.
	// Defaults to DefaultCustomFieldTable.
	CustomFieldTable string

	// UseModelFactory is passed through to the schema for the emitter.
	UseModelFactory bool

	// Logger receives warnings about degraded inferences. Defaults to a no-op logger.
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.IDSuffix == "" {
		o.IDSuffix = schema.DefaultIDSuffix
	}
	if o.CustomFieldTable == "" {
		o.CustomFieldTable = DefaultCustomFieldTable
	}
	if o.Naming == (naming.Options{}) {
		o.Naming = naming.DefaultOptions()
	}
	if o.Naming.Defaults.CaseType == "" {
		o.Naming.Defaults.CaseType = naming.Pascal
	}
	return o
}

// build is the state of a single Build call. Lookups live here and are
// dropped with it once the schema is returned.
type build struct {
	opts   Options
	schema *schema.Schema
	log    *zap.SugaredLogger

	excluded          map[string]bool
	tableLookup       map[string]int
	associationsFound map[string]bool
	xrefs             map[string]*schema.Xref
	xrefOrder         []string
	customReferences  []db.ForeignKeyRow
}

func newBuild(opts Options) *build {
	opts = opts.withDefaults()

	excluded := make(map[string]bool, len(opts.ExcludeTables))
	for _, name := range opts.ExcludeTables {
		excluded[name] = true
	}

	return &build{
		opts:              opts,
		schema:            schema.New(opts.Naming, opts.IDSuffix, opts.UseModelFactory, opts.Logger),
		log:               opts.Logger.Sugar(),
		excluded:          excluded,
		tableLookup:       make(map[string]int),
		associationsFound: make(map[string]bool),
		xrefs:             make(map[string]*schema.Xref),
	}
}

// Build reads metadata from p and returns the inferred schema.
func Build(ctx context.Context, p db.Provider, opts Options) (*schema.Schema, error) {
	b := newBuild(opts)
	b.checkNaming()

	columns, err := p.Columns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	rows, err := b.prepareColumns(columns)
	if err != nil {
		return nil, err
	}

	var customLookup map[string]bool
	if hasTable(rows, b.opts.CustomFieldTable) {
		customRows, err := p.CustomFields(ctx, b.opts.CustomFieldTable)
		if err != nil {
			return nil, fmt.Errorf("failed to read custom fields: %w", err)
		}
		rows, customLookup = b.mergeCustomFields(rows, customRows)
	}

	b.buildTables(rows, customLookup)
	b.resolveIDFields()

	foreignKeys, err := p.ForeignKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read foreign keys: %w", err)
	}

	b.buildReferences(b.prepareForeignKeys(foreignKeys))
	b.buildXrefs()
	b.renameViews()
	b.addViewReferences()

	b.log.Debugw("schema built",
		"tables", len(b.schema.Tables),
		"references", len(b.schema.References),
		"xrefs", len(b.schema.Xrefs),
		"views", len(b.schema.Views))

	return b.schema, nil
}

func (b *build) checkNaming() {
	styles := map[string]naming.Case{
		"defaults":        b.opts.Naming.Defaults.CaseType,
		"associationName": b.opts.Naming.AssociationName.CaseType,
		"methodName":      b.opts.Naming.MethodName.CaseType,
		"getterName":      b.opts.Naming.GetterName.CaseType,
	}
	for option, style := range styles {
		if style != "" && !naming.Known(style) {
			b.log.Warnw("unknown case type, names will be left unchanged", "option", option, "caseType", style)
		}
	}
}
