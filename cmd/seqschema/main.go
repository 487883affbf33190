package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tordrt/seqschema"
	"github.com/tordrt/seqschema/internal/config"
)

var (
	dbURL        string
	mysqlURL     string
	sqlitePath   string
	configFile   string
	outputFile   string
	excludes     string
	schemaName   string
	format       string
	idSuffix     string
	modelFactory bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "seqschema",
	Short: "Infer a persistence model from database metadata",
	Long: `seqschema reads table, column and foreign key metadata from MySQL, PostgreSQL or SQLite
and infers the model used for generating persistence mappings: identity fields, references,
many-to-many cross-reference tables, associations and views.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&dbURL, "db-url", "", "PostgreSQL connection string")
	rootCmd.Flags().StringVar(&mysqlURL, "mysql-url", "", "MySQL connection string")
	rootCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Settings file (YAML)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVarP(&excludes, "exclude-tables", "x", "", "Tables to exclude (comma-separated)")
	rootCmd.Flags().StringVarP(&schemaName, "schema", "s", "", "Database schema name (default: public for PostgreSQL, DSN database for MySQL)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or markdown")
	rootCmd.Flags().StringVar(&idSuffix, "id-suffix", "", "Identity field suffix (default: id)")
	rootCmd.Flags().BoolVar(&modelFactory, "model-factory", false, "Record that generated code uses a model factory")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	settings := config.Default()
	if configFile != "" {
		settings, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	databaseURL, err := resolveDatabaseURL(settings.Database.URL)
	if err != nil {
		return err
	}

	opts := &seqschema.Options{
		ExcludeTables:    append(settings.ExcludeTables, parseTableList(excludes)...),
		SchemaName:       firstNonEmpty(schemaName, settings.Database.Schema),
		Naming:           settings.Naming,
		IDSuffix:         firstNonEmpty(idSuffix, settings.IDSuffix),
		CustomFieldTable: settings.CustomFieldTable,
		UseModelFactory:  modelFactory || settings.ModelFactory,
		Logger:           logger,
	}

	logger.Sugar().Infow("reading schema", "excluding", strings.Join(opts.ExcludeTables, ","))

	s, err := seqschema.BuildSchema(ctx, databaseURL, opts)
	if err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}

	var writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Sugar().Warnw("failed to close output file", "error", err)
			}
		}()
		writer = f
	}

	if err := seqschema.FormatSchema(s, format, writer); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}

// resolveDatabaseURL picks the single database given on the command line, or
// the one from the settings file.
func resolveDatabaseURL(fromSettings string) (string, error) {
	var urls []string
	if dbURL != "" {
		urls = append(urls, dbURL)
	}
	if mysqlURL != "" {
		urls = append(urls, "mysql://"+strings.TrimPrefix(mysqlURL, "mysql://"))
	}
	if sqlitePath != "" {
		urls = append(urls, "sqlite://"+sqlitePath)
	}

	switch {
	case len(urls) > 1:
		return "", fmt.Errorf("only one of --db-url, --mysql-url, or --sqlite can be specified")
	case len(urls) == 1:
		return urls[0], nil
	case fromSettings != "":
		return fromSettings, nil
	default:
		return "", fmt.Errorf("one of --db-url, --mysql-url, --sqlite or a config file database url must be specified")
	}
}

func parseTableList(tables string) []string {
	if tables == "" {
		return nil
	}
	list := strings.Split(tables, ",")
	for i, t := range list {
		list[i] = strings.TrimSpace(t)
	}
	return list
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
